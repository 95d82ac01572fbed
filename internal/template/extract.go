package template

import (
	"slices"
	"unicode"
)

// ExtractPlaceholders はテンプレート本文から {name} 形式のプレースホルダー名を
// 初出順で重複なく抽出する
//
// '{' を見つけると英数字またはアンダースコアが続く限り名前として読み進め、
// 対応する '}' に到達した時点で名前を確定する。それ以外の文字に遭遇した
// 場合はそのプレースホルダーを破棄し、遭遇した文字の直後から走査を再開する
// (開き括弧の直後からやり直すことはないため、不正な括弧列を二重に
// 走査することはない)。空の {} は記録しない。リテラルの括弧を
// エスケープする構文は存在しない
func ExtractPlaceholders(content string) []string {
	var placeholders []string

	runes := []rune(content)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '{' {
			continue
		}

		var name []rune
		foundEnd := false

		j := i + 1
		for ; j < len(runes); j++ {
			c := runes[j]
			if c == '}' {
				foundEnd = true
				break
			}
			if c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c) {
				name = append(name, c)
				continue
			}
			// 名前に使えない文字に遭遇: この試行を破棄する
			name = nil
			break
		}

		if foundEnd && len(name) > 0 {
			s := string(name)
			if !slices.Contains(placeholders, s) {
				placeholders = append(placeholders, s)
			}
		}

		// 走査は消費済みの文字の次から再開する
		i = j
	}

	return placeholders
}
