package bugreport

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/douhashi/mushi/internal/terminal"
)

// Output は診断の書き込み先。背後が何であるか(コンソール、ログ、
// メモリ上のバッファ、破棄)を本パッケージは関知しない
type Output interface {
	// WriteString は文字列をそのまま書き込む
	WriteString(s string)
	// Writef は書式化した文字列を書き込む
	Writef(format string, args ...any)
}

type writerOutput struct {
	w io.Writer
}

// NewWriterOutput はio.Writerを包むOutputを返す
func NewWriterOutput(w io.Writer) Output {
	return &writerOutput{w: w}
}

func (o *writerOutput) WriteString(s string) {
	_, _ = io.WriteString(o.w, s)
}

func (o *writerOutput) Writef(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

type discardOutput struct{}

func (discardOutput) WriteString(string)    {}
func (discardOutput) Writef(string, ...any) {}

// Discard は何も書き込まないOutput
var Discard Output = discardOutput{}

// Report はシングルトン設定に対して診断をstderrに出力し、issue URLを返す。
// 呼び出し位置は自動で取得する。URL生成に失敗した場合はエラー行を出力して
// 空文字列を返し、呼び出し側の処理を中断することはない
func Report(name string, params map[string]string) string {
	file, line := callerLocation()
	return reportTo(globalConfig.Load(), name, params, file, line, NewWriterOutput(os.Stderr))
}

// ReportAt は呼び出し位置と出力先を明示してシングルトン設定に対する
// 診断を出力する
func ReportAt(name string, params map[string]string, file string, line int, out Output) string {
	return reportTo(globalConfig.Load(), name, params, file, line, out)
}

// reportTo は診断出力の本体。cfgがnilの場合(シングルトン未初期化)も
// エラー行の出力に変換し、決してpanicしない
func reportTo(cfg *Config, name string, params map[string]string, file string, line int, out Output) string {
	out.Writef("🐛 BUG ENCOUNTERED in %s:%d\n", file, line)

	var url string
	var err error
	if cfg == nil {
		err = ErrNotInitialized
	} else {
		url, err = cfg.GenerateURL(name, params)
	}

	if err != nil {
		out.Writef("   Error generating bug report: %v\n", err)
		out.WriteString("\n")
		return ""
	}

	out.Writef("   Template: %s\n", name)
	if len(params) > 0 {
		out.WriteString("   Parameters:\n")
		// マップの反復順に依存するため、行の並びは呼び出しごとに
		// 変わりうる(安定性は保証しない)
		for key, value := range params {
			out.Writef("     %s: %s\n", key, value)
		}
	}

	useHyperlink := false
	switch cfg.Hyperlinks {
	case HyperlinkAuto:
		useHyperlink = terminal.SupportsHyperlinks()
	case HyperlinkAlways:
		useHyperlink = true
	}

	if useHyperlink {
		out.Writef("   %s\n", terminal.Hyperlink(url, "File a bug report"))
	} else {
		out.Writef("   File a bug report: %s\n", url)
	}
	out.WriteString("\n")

	return url
}

// callerLocation は公開APIの呼び出し元のファイルと行番号を返す
func callerLocation() (string, int) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown", 0
	}
	return file, line
}
