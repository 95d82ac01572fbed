// Package config はCLIの設定ファイル(mushi.yml)の読み込みを提供する
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/douhashi/mushi/internal/bugreport"
	"github.com/douhashi/mushi/internal/template"
	"github.com/douhashi/mushi/internal/utils"
)

// Config はアプリケーション全体の設定
type Config struct {
	GitHub        GitHubConfig              `mapstructure:"github"`
	Hyperlinks    string                    `mapstructure:"hyperlinks"`
	Templates     map[string]TemplateConfig `mapstructure:"templates"`
	TemplateFiles map[string]FileConfig     `mapstructure:"template_files"`
}

// GitHubConfig は対象リポジトリの設定。owner/repoの組か、
// urlにリポジトリのURL(またはowner/repo形式)を指定する
type GitHubConfig struct {
	Owner string `mapstructure:"owner"`
	Repo  string `mapstructure:"repo"`
	URL   string `mapstructure:"url"`
}

// TemplateConfig はインラインテンプレートの定義
type TemplateConfig struct {
	Title  string   `mapstructure:"title"`
	Body   string   `mapstructure:"body"`
	Labels []string `mapstructure:"labels"`
}

// FileConfig はファイル由来テンプレートの定義。pathのファイル内容が
// テンプレート本文になる
type FileConfig struct {
	Path   string   `mapstructure:"path"`
	Labels []string `mapstructure:"labels"`
}

// NewConfig は新しいConfigを作成する
func NewConfig() *Config {
	return &Config{
		Hyperlinks: "auto",
	}
}

// Load は設定ファイルから設定を読み込む
func (c *Config) Load(configPath string) error {
	v := viper.New()

	v.SetConfigFile(configPath)

	// 環境変数の設定
	v.SetEnvPrefix("MUSHI")
	v.AutomaticEnv()
	v.BindEnv("github.owner", "MUSHI_GITHUB_OWNER")
	v.BindEnv("github.repo", "MUSHI_GITHUB_REPO")
	v.BindEnv("hyperlinks", "MUSHI_HYPERLINKS")

	// デフォルト値の設定
	v.SetDefault("hyperlinks", "auto")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	if err := v.Unmarshal(c); err != nil {
		return err
	}

	return nil
}

// LoadOrDefault は設定ファイルを読み込み、失敗した場合はデフォルト値を使用する
func (c *Config) LoadOrDefault(configPath string) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return
	}

	_ = c.Load(configPath)
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.GitHub.Owner == "" || c.GitHub.Repo == "" {
		if c.GitHub.URL == "" {
			return errors.New("github.owner and github.repo (or github.url) are required")
		}
		if _, err := utils.ParseRepo(c.GitHub.URL); err != nil {
			return fmt.Errorf("invalid github.url: %w", err)
		}
	}

	if _, err := bugreport.ParseHyperlinkMode(c.Hyperlinks); err != nil {
		return err
	}

	return nil
}

// RepoInfo は設定から対象リポジトリの所有者と名前を解決する。
// owner/repoの組が優先され、どちらかが空の場合のみurlを解析する
func (c *Config) RepoInfo() (*utils.RepoInfo, error) {
	if c.GitHub.Owner != "" && c.GitHub.Repo != "" {
		return &utils.RepoInfo{Owner: c.GitHub.Owner, Repo: c.GitHub.Repo}, nil
	}
	if c.GitHub.URL != "" {
		return utils.ParseRepo(c.GitHub.URL)
	}
	return nil, errors.New("repository is not configured")
}

// BuildHandle は設定からbugreport.Handleを組み立てる。
// ファイル由来テンプレートの内容はこの時点でディスクから読み込む
func (c *Config) BuildHandle() (*bugreport.Handle, error) {
	info, err := c.RepoInfo()
	if err != nil {
		return nil, err
	}

	mode, err := bugreport.ParseHyperlinkMode(c.Hyperlinks)
	if err != nil {
		return nil, err
	}

	handle := bugreport.NewHandle(info.Owner, info.Repo).Hyperlinks(mode)

	for name, tc := range c.Templates {
		handle.AddTemplate(name, template.New(tc.Title, tc.Body).WithLabels(tc.Labels...))
	}

	for name, fc := range c.TemplateFiles {
		content, err := os.ReadFile(fc.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read template file %s: %w", fc.Path, err)
		}
		handle.AddTemplateFile(name, template.NewFile(string(content)).WithLabels(fc.Labels...))
	}

	return handle, nil
}
