package peg

import "fmt"

func isDigitByte(b byte) bool    { return b >= '0' && b <= '9' }
func isAlphaByte(b byte) bool    { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isAlphanumByte(b byte) bool { return isAlphaByte(b) || isDigitByte(b) }
func isHexByte(b byte) bool {
	return isDigitByte(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func quoteByte(b byte) string { return fmt.Sprintf("`%c`", b) }
func quoteStr(s string) string { return fmt.Sprintf("`%s`", s) }
