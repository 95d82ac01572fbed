// Package bugreport はバグ報告用のGitHub issue URLの生成と診断出力を提供する
//
// 設定の持ち方には2つの形態がある。プロセス全体で1回だけコミットできる
// シングルトン(Init + Builder.Build)と、グローバルな可視性を持たず
// 自由に複製できるハンドル(NewHandle)である。どちらも同じConfigを
// 背後に持ち、URL生成と診断出力の動作は共通になる
package bugreport

import (
	"fmt"
	"strings"

	"github.com/douhashi/mushi/internal/template"
	"github.com/douhashi/mushi/internal/urlencode"
)

// HyperlinkMode は診断出力でのハイパーリンクの扱いを表す
type HyperlinkMode int

const (
	// HyperlinkAuto はターミナルの対応状況を自動判定する
	HyperlinkAuto HyperlinkMode = iota
	// HyperlinkAlways は常にハイパーリンクを使う
	HyperlinkAlways
	// HyperlinkNever はハイパーリンクを使わずURLをそのまま表示する
	HyperlinkNever
)

// String はHyperlinkModeの文字列表現を返す
func (m HyperlinkMode) String() string {
	switch m {
	case HyperlinkAlways:
		return "always"
	case HyperlinkNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseHyperlinkMode は設定ファイルの文字列をHyperlinkModeに変換する
func ParseHyperlinkMode(s string) (HyperlinkMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return HyperlinkAuto, nil
	case "always":
		return HyperlinkAlways, nil
	case "never":
		return HyperlinkNever, nil
	default:
		return HyperlinkAuto, fmt.Errorf("unknown hyperlink mode: %s", s)
	}
}

// Config はバグ報告の設定。リポジトリの所有者と名前、登録済みの
// テンプレート、ハイパーリンクの方針を保持する
//
// インラインテンプレートとファイル由来テンプレートは別々のマップで
// 管理され、検索時はインラインが常に優先される。同名の登録は拒否されず、
// 衝突した名前ではファイル由来のマップは参照されない(検索順は
// 観測可能な契約であり、マップを統合してはならない)
type Config struct {
	Owner         string
	Repo          string
	Templates     map[string]template.IssueTemplate
	TemplateFiles map[string]template.File
	Hyperlinks    HyperlinkMode
}

func newConfig(owner, repo string) *Config {
	return &Config{
		Owner:         owner,
		Repo:          repo,
		Templates:     make(map[string]template.IssueTemplate),
		TemplateFiles: make(map[string]template.File),
		Hyperlinks:    HyperlinkAuto,
	}
}

// clone はマップとラベルスライスを共有しない完全な複製を返す
func (c *Config) clone() *Config {
	dup := &Config{
		Owner:         c.Owner,
		Repo:          c.Repo,
		Templates:     make(map[string]template.IssueTemplate, len(c.Templates)),
		TemplateFiles: make(map[string]template.File, len(c.TemplateFiles)),
		Hyperlinks:    c.Hyperlinks,
	}
	for name, tmpl := range c.Templates {
		dup.Templates[name] = tmpl.WithLabels(tmpl.Labels...)
	}
	for name, file := range c.TemplateFiles {
		dup.TemplateFiles[name] = file.WithLabels(file.Labels...)
	}
	return dup
}

// GenerateURL は名前でテンプレートを検索し、パラメータを適用した
// 事前入力済みのissue URLを返す
//
// 検索はインラインテンプレートが先で、見つからない場合のみファイル由来の
// テンプレート(パース+厳密検証+置換)を参照する。どちらにも存在しない
// 場合はTemplateNotFoundErrorを返す
func (c *Config) GenerateURL(name string, params map[string]string) (string, error) {
	var filled template.IssueTemplate

	if tmpl, ok := c.Templates[name]; ok {
		filled = tmpl.FillParams(params)
	} else if file, ok := c.TemplateFiles[name]; ok {
		var err error
		filled, err = file.Fill(params)
		if err != nil {
			return "", err
		}
	} else {
		return "", &TemplateNotFoundError{Name: name}
	}

	return buildIssueURL(c.Owner, c.Repo, filled), nil
}

// buildIssueURL は記入済みテンプレートからissue作成URLを組み立てる。
// クエリパラメータは空でないフィールドのみを title, body, labels の
// 固定順で付加する。ラベルは','で連結してから1つの値としてエンコード
// するため、URL上では%2Cとして現れる。3つとも空の場合は'?'を付けない
func buildIssueURL(owner, repo string, t template.IssueTemplate) string {
	url := fmt.Sprintf("https://github.com/%s/%s/issues/new", owner, repo)

	var query []string
	if t.Title != "" {
		query = append(query, "title="+urlencode.Encode(t.Title))
	}
	if t.Body != "" {
		query = append(query, "body="+urlencode.Encode(t.Body))
	}
	if len(t.Labels) > 0 {
		query = append(query, "labels="+urlencode.Encode(strings.Join(t.Labels, ",")))
	}

	if len(query) > 0 {
		url += "?" + strings.Join(query, "&")
	}
	return url
}
