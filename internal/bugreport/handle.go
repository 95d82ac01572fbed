package bugreport

import (
	"os"

	"github.com/douhashi/mushi/internal/template"
)

// Handle はグローバルな可視性を持たないバグ報告の設定。複数のパッケージで
// 共有する場合やシングルトンを避けたい場合に使う
//
// Cloneで複製したHandleは背後のマップを共有せず、複製後の変更は互いに
// 影響しない。1つのHandleを複数のゴルーチンから同時に変更しないことは
// 呼び出し側の責任であり、本パッケージは同期を行わない
type Handle struct {
	config *Config
}

// NewHandle は新しいHandleを作成する
func NewHandle(owner, repo string) *Handle {
	return &Handle{config: newConfig(owner, repo)}
}

// AddTemplate はインラインテンプレートを登録する。検索時は
// ファイル由来のテンプレートより常に優先される
func (h *Handle) AddTemplate(name string, tmpl template.IssueTemplate) *Handle {
	h.config.Templates[name] = tmpl
	return h
}

// AddTemplateFile はファイル由来のテンプレートを登録する
func (h *Handle) AddTemplateFile(name string, file template.File) *Handle {
	h.config.TemplateFiles[name] = file
	return h
}

// Hyperlinks はハイパーリンクの方針を設定する
func (h *Handle) Hyperlinks(mode HyperlinkMode) *Handle {
	h.config.Hyperlinks = mode
	return h
}

// Clone はマップを共有しない独立した複製を返す
func (h *Handle) Clone() *Handle {
	return &Handle{config: h.config.clone()}
}

// Config は現在の設定を返す
func (h *Handle) Config() *Config {
	return h.config
}

// GenerateURL は名前でテンプレートを検索し、事前入力済みのissue URLを返す
func (h *Handle) GenerateURL(name string, params map[string]string) (string, error) {
	return h.config.GenerateURL(name, params)
}

// ReportBug は診断を出力せずにissue URLだけを生成する。
// エラー時は空文字列を返す
func (h *Handle) ReportBug(name string, params map[string]string) string {
	file, line := callerLocation()
	return reportTo(h.config, name, params, file, line, Discard)
}

// ReportBugStderr は診断をstderrに出力し、issue URLを返す。
// エラー時は診断にエラー行を出力して空文字列を返す
func (h *Handle) ReportBugStderr(name string, params map[string]string) string {
	file, line := callerLocation()
	return reportTo(h.config, name, params, file, line, NewWriterOutput(os.Stderr))
}

// ReportBugTo は呼び出し位置と出力先を明示して診断を出力する
func (h *Handle) ReportBugTo(name string, params map[string]string, file string, line int, out Output) string {
	return reportTo(h.config, name, params, file, line, out)
}
