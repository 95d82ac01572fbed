// Package urlencode はGitHub issue URLのクエリ文字列向けのパーセントエンコードを提供する
package urlencode

import "strings"

const upperhex = "0123456789ABCDEF"

// Encode は入力文字列をRFC 3986に従ってパーセントエンコードする
// 非予約文字(英数字と - . _ ~)はそのまま通し、スペースは'+'に、
// それ以外のバイトは%XX(大文字16進)に変換する。マルチバイトのUTF-8文字列も
// バイト単位で処理するため、ロケールに依存しない決定的な出力になる
func Encode(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9',
			c == '-', c == '.', c == '_', c == '~':
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0f])
		}
	}

	return b.String()
}
