package template

import (
	"errors"
	"fmt"
)

// EmptyTemplateError はテンプレートファイルの内容が空、または
// 1行目のタイトルが空白のみの場合のエラー
type EmptyTemplateError struct {
	Reason string
}

func (e *EmptyTemplateError) Error() string {
	return e.Reason
}

// ParameterMismatchError はプレースホルダー集合とパラメータ集合の
// 不一致を表すエラー。最初に見つかった1件のみを報告する
type ParameterMismatchError struct {
	// Name は問題のあったプレースホルダー名またはパラメータキー
	Name string
	// Unused がtrueの場合、Nameはテンプレートに存在しない余分なパラメータ。
	// falseの場合、Nameは値が供給されなかった必須プレースホルダー
	Unused bool
}

func (e *ParameterMismatchError) Error() string {
	if e.Unused {
		return fmt.Sprintf("Unused parameter: %s", e.Name)
	}
	return fmt.Sprintf("Missing required parameter: %s", e.Name)
}

// IsEmptyTemplate はエラーが空テンプレートによるものかを判定する
func IsEmptyTemplate(err error) bool {
	var target *EmptyTemplateError
	return errors.As(err, &target)
}

// IsParameterMismatch はエラーがパラメータ不一致によるものかを判定する
func IsParameterMismatch(err error) bool {
	var target *ParameterMismatchError
	return errors.As(err, &target)
}
