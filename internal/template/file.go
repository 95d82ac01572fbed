package template

import (
	"slices"
	"strings"
)

// File はファイル由来のテンプレート。1行目をタイトル、残りを本文として
// 扱う静的テキストとラベルを保持する。内容はビルド時に解決済みの
// 入力(go:embedや設定読み込み)として受け取る
type File struct {
	Content string
	Labels  []string
}

// NewFile は新しいFileを作成する
func NewFile(content string) File {
	return File{Content: content}
}

// WithLabels はラベルを設定した新しいFileを返す
func (f File) WithLabels(labels ...string) File {
	f.Labels = append([]string(nil), labels...)
	return f
}

// Parse は内容をIssueTemplateに変換する。1行目(トリム後)をタイトル、
// 2行目以降を改行で連結してトリムしたものを本文とする。
// パースは純粋で、同じ内容に対して常に同じ結果を返す
func (f File) Parse() (IssueTemplate, error) {
	if f.Content == "" {
		return IssueTemplate{}, &EmptyTemplateError{Reason: "Template file is empty"}
	}

	lines := strings.Split(f.Content, "\n")

	title := strings.TrimSpace(lines[0])
	if title == "" {
		return IssueTemplate{}, &EmptyTemplateError{Reason: "Template must have a title on the first line"}
	}

	var body string
	if len(lines) > 1 {
		body = strings.TrimSpace(strings.Join(lines[1:], "\n"))
	}

	return IssueTemplate{
		Title:  title,
		Body:   body,
		Labels: append([]string(nil), f.Labels...),
	}, nil
}

// ValidateParams はパラメータのキー集合が内容から抽出した
// プレースホルダー集合と厳密に一致することを検証する。
// 不足も余剰も失敗であり、最初に見つかった1件を報告する
// (不足は走査順、余剰はマップの反復順で最初のもの)
func (f File) ValidateParams(params map[string]string) error {
	placeholders := ExtractPlaceholders(f.Content)

	for _, placeholder := range placeholders {
		if _, ok := params[placeholder]; !ok {
			return &ParameterMismatchError{Name: placeholder}
		}
	}

	for key := range params {
		if !slices.Contains(placeholders, key) {
			return &ParameterMismatchError{Name: key, Unused: true}
		}
	}

	return nil
}

// Fill は検証・パース・置換をまとめて行い、完成したIssueTemplateを返す。
// インラインテンプレートのFillParamsと異なり、置換前に
// ValidateParamsによる厳密な検証を行う
func (f File) Fill(params map[string]string) (IssueTemplate, error) {
	if err := f.ValidateParams(params); err != nil {
		return IssueTemplate{}, err
	}

	parsed, err := f.Parse()
	if err != nil {
		return IssueTemplate{}, err
	}

	return parsed.FillParams(params), nil
}
