// Package utils はリポジトリ指定の解析などの補助機能を提供する
package utils

import (
	"fmt"
	"regexp"
)

// RepoInfo はGitHubリポジトリの所有者と名前を保持する
type RepoInfo struct {
	Owner string
	Repo  string
}

var (
	shorthandPattern = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9-]*)/([A-Za-z0-9._-]+?)(?:\.git)?$`)
	httpsPattern     = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/]+?)(?:\.git)?$`)
	sshPattern       = regexp.MustCompile(`^(?:ssh://)?git@github\.com[:/]([^/]+)/([^/]+?)(?:\.git)?$`)
)

// ParseRepo はリポジトリ指定からowner/repo情報を抽出する
// 以下の形式に対応:
// - owner/repo
// - https://github.com/owner/repo(.git)
// - git@github.com:owner/repo(.git)
// - ssh://git@github.com/owner/repo(.git)
func ParseRepo(spec string) (*RepoInfo, error) {
	for _, pattern := range []*regexp.Regexp{httpsPattern, sshPattern, shorthandPattern} {
		if matches := pattern.FindStringSubmatch(spec); len(matches) == 3 {
			return &RepoInfo{
				Owner: matches[1],
				Repo:  matches[2],
			}, nil
		}
	}
	return nil, fmt.Errorf("invalid repository format: %s", spec)
}
