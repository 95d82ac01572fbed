// Package template はissueテンプレートの定義とプレースホルダー置換を提供する
//
// テンプレートの本文には {name} 形式のプレースホルダーを埋め込める。
// インラインテンプレート(IssueTemplate)は作者がコード中で直接定義する
// 信頼済みの入力として扱い、置換時の検証は行わない。一方、ファイル由来の
// テンプレート(File)はパース対象の外部入力として扱い、置換前に
// パラメータ集合の厳密な一致検証を行う。この非対称性は仕様であり、
// 統一してはならない
package template

import "strings"

// IssueTemplate はissueのタイトル・本文・ラベルを保持するテンプレート
// 一度構築したら変更せず、FillParamsは常に新しい値を返す
type IssueTemplate struct {
	Title  string
	Body   string
	Labels []string
}

// New は新しいIssueTemplateを作成する
func New(title, body string) IssueTemplate {
	return IssueTemplate{
		Title: title,
		Body:  body,
	}
}

// WithLabels はラベルを設定した新しいIssueTemplateを返す
func (t IssueTemplate) WithLabels(labels ...string) IssueTemplate {
	t.Labels = append([]string(nil), labels...)
	return t
}

// FillParams はタイトルと本文の {key} をparamsの値で置換した新しい
// IssueTemplateを返す。ラベルは置換対象外でそのまま引き継がれる
//
// 置換はキーごとに独立して適用されるため、置換後の値が別キーの {other}
// 構文を含む場合は後続キーの置換を誘発しうる。これは既知の制限であり
// 修正対象ではない。またインラインテンプレートの置換では
// パラメータの過不足を検証しない(File.ValidateParamsとの対比)
func (t IssueTemplate) FillParams(params map[string]string) IssueTemplate {
	title := t.Title
	body := t.Body

	for key, value := range params {
		placeholder := "{" + key + "}"
		title = strings.ReplaceAll(title, placeholder, value)
		body = strings.ReplaceAll(body, placeholder, value)
	}

	return IssueTemplate{
		Title:  title,
		Body:   body,
		Labels: append([]string(nil), t.Labels...),
	}
}
