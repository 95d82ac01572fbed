package bugreport

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyInitialized はプロセス全体の設定が既にコミット済みである
	// ことを表す。2回目以降のBuildは必ずこのエラーを返し、最初の設定は
	// そのまま維持される
	ErrAlreadyInitialized = errors.New("bug reporting already initialized")

	// ErrNotInitialized はプロセス全体の設定がまだコミットされていない
	// ことを表す
	ErrNotInitialized = errors.New("bug reporting not initialized. Call bugreport.Init() first")
)

// TemplateNotFoundError は指定された名前のテンプレートがインライン・
// ファイル由来のどちらのマップにも存在しないことを表すエラー
type TemplateNotFoundError struct {
	Name string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("Template '%s' not found", e.Name)
}

// IsTemplateNotFound はエラーがテンプレート未登録によるものかを判定する
func IsTemplateNotFound(err error) bool {
	var target *TemplateNotFoundError
	return errors.As(err, &target)
}

// IsAlreadyInitialized はエラーが二重初期化によるものかを判定する
func IsAlreadyInitialized(err error) bool {
	return errors.Is(err, ErrAlreadyInitialized)
}

// IsNotInitialized はエラーが未初期化によるものかを判定する
func IsNotInitialized(err error) bool {
	return errors.Is(err, ErrNotInitialized)
}
