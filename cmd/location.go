package cmd

import (
	"strconv"
	"strings"
)

// splitLocation は file:line 形式の文字列を分解する。
// 形式に合わない場合はコマンド実行そのものを発生位置として扱う
func splitLocation(location string) (string, int) {
	if location == "" {
		return "mushi", 0
	}

	idx := strings.LastIndex(location, ":")
	if idx <= 0 {
		return location, 0
	}

	line, err := strconv.Atoi(location[idx+1:])
	if err != nil {
		return location, 0
	}
	return location[:idx], line
}
