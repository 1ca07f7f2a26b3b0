package hueseek

const hexDigits = "0123456789ABCDEF"

// HexByte encodes the low byte of dec as two upper-case hex digits, most
// significant nibble first. Higher bits are discarded, so 256 encodes as
// "00" and -1 as "FF".
func HexByte(dec int) string {
	var buf [2]byte
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = hexDigits[dec&0x0F]
		dec >>= 4
	}
	return string(buf[:])
}
