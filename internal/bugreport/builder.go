package bugreport

import (
	"sync/atomic"

	"github.com/douhashi/mushi/internal/template"
)

// globalConfig はプロセス全体で共有されるシングルトン設定。
// Builder.BuildのCompareAndSwapで一度だけ書き込まれ、以降は読み取り専用。
// 解除する操作は存在せず、プロセス終了まで生存する
var globalConfig atomic.Pointer[Config]

// Init はプロセス全体のシングルトン設定を組み立てるBuilderを返す。
// テンプレートを登録したあとBuildでコミットする
func Init(owner, repo string) *Builder {
	return &Builder{config: newConfig(owner, repo)}
}

// Builder はシングルトン設定を段階的に組み立てる。メソッドは同じBuilderを
// 返すため、チェーンして記述できる
type Builder struct {
	config *Config
}

// AddTemplate はインラインテンプレートを登録する。同名の再登録は
// 上書きになる。ファイル由来のテンプレートと名前が重なった場合、
// 検索時はインラインが優先される
func (b *Builder) AddTemplate(name string, tmpl template.IssueTemplate) *Builder {
	b.config.Templates[name] = tmpl
	return b
}

// AddTemplateFile はファイル由来のテンプレートを登録する
func (b *Builder) AddTemplateFile(name string, file template.File) *Builder {
	b.config.TemplateFiles[name] = file
	return b
}

// Hyperlinks はハイパーリンクの方針を設定する
func (b *Builder) Hyperlinks(mode HyperlinkMode) *Builder {
	b.config.Hyperlinks = mode
	return b
}

// Build は組み立てた設定をシングルトンにコミットする。コミットは
// プロセス内で一度だけ成功し、競合した場合もちょうど1つの呼び出しだけが
// 成功する。既にコミット済みの場合はErrAlreadyInitializedを返し、
// 最初の設定はそのまま維持される
func (b *Builder) Build() error {
	if !globalConfig.CompareAndSwap(nil, b.config) {
		return ErrAlreadyInitialized
	}
	return nil
}

// GenerateURL はシングルトン設定に対してissue URLを生成する。
// Initがまだコミットされていない場合はErrNotInitializedを返す
func GenerateURL(name string, params map[string]string) (string, error) {
	cfg := globalConfig.Load()
	if cfg == nil {
		return "", ErrNotInitialized
	}
	return cfg.GenerateURL(name, params)
}
