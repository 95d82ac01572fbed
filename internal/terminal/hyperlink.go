// Package terminal はターミナルのハイパーリンク対応判定とOSC 8シーケンスの
// 生成を提供する
package terminal

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// hyperlinkTermPrograms はOSC 8ハイパーリンクに対応している既知の
// ターミナルエミュレータ(TERM_PROGRAMの値)
var hyperlinkTermPrograms = []string{
	"iTerm.app",
	"WezTerm",
	"Alacritty",
	"Windows Terminal",
}

// Hyperlink はOSC 8エスケープシーケンスでクリック可能なリンクを生成する
func Hyperlink(url, text string) string {
	return termenv.Hyperlink(url, text)
}

// SupportsHyperlinks は実行中のターミナルがOSC 8ハイパーリンクに
// 対応しているかを環境変数から推定する。stderrがTTYでない場合は
// エスケープシーケンスがそのまま出力に混ざるため常にfalseを返す
func SupportsHyperlinks() bool {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return false
	}
	return supportsHyperlinksEnv(os.Getenv)
}

// supportsHyperlinksEnv は環境変数の参照関数を差し替え可能にした判定本体
func supportsHyperlinksEnv(getenv func(string) string) bool {
	if t := getenv("TERM"); t != "" {
		if strings.Contains(t, "xterm") || strings.Contains(t, "screen") || strings.Contains(t, "tmux") {
			return true
		}
	}

	if p := getenv("TERM_PROGRAM"); p != "" {
		for _, known := range hyperlinkTermPrograms {
			if p == known {
				return true
			}
		}
	}

	// VS Codeの統合ターミナル
	if getenv("VSCODE_INJECTION") != "" {
		return true
	}

	// 未知のターミナルではリンクを使わない
	return false
}
