package util

// ByteLowercase returns a [byte-lowercase] version of str.
// Bytes outside the range A-Z are left untouched.
// If str contains no uppercase ASCII letters, str itself is returned
// and no allocation takes place.
//
// [byte-lowercase]: https://infra.spec.whatwg.org/#byte-lowercase
func ByteLowercase(str string) string {
	return mapASCII(str, 'A', 'Z', 'a'-'A')
}

// ByteUppercase returns a [byte-uppercase] version of str;
// see [ByteLowercase].
//
// [byte-uppercase]: https://infra.spec.whatwg.org/#byte-uppercase
func ByteUppercase(str string) string {
	return mapASCII(str, 'a', 'z', 'A'-'a')
}

func mapASCII(str string, lo, hi byte, delta int) string {
	i := 0
	for ; i < len(str); i++ {
		if lo <= str[i] && str[i] <= hi {
			break
		}
	}
	if i == len(str) {
		return str
	}
	buf := []byte(str)
	for ; i < len(buf); i++ {
		if lo <= buf[i] && buf[i] <= hi {
			buf[i] = byte(int(buf[i]) + delta)
		}
	}
	return string(buf)
}
