package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

// peekRune читает текущую позицию как руну
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	end := lx.cursor.end
	return utf8.DecodeRune(lx.file.Content[lx.cursor.Off:end])
}

// bumpRune перемещает курсор на размер текущей руны (минимум один байт)
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

// Идентификатор: буквы, цифры и '_' в любой позиции (числа: тоже константы).
func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func (lx *Lexer) atIdentStart() bool {
	r, sz := lx.peekRune()
	if sz == 0 {
		return false
	}
	if r < utf8.RuneSelf {
		return isIdentByte(byte(r))
	}
	return r != utf8.RuneError && isIdentRune(r) && !unicode.Is(unicode.Mn, r)
}

func (lx *Lexer) atIdentContinue() bool {
	r, sz := lx.peekRune()
	if sz == 0 {
		return false
	}
	if r < utf8.RuneSelf {
		return isIdentByte(byte(r))
	}
	return r != utf8.RuneError && isIdentRune(r)
}
