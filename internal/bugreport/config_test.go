package bugreport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/douhashi/mushi/internal/template"
)

func TestConfig_GenerateURL(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*Config)
		template string
		params   map[string]string
		want     string
	}{
		{
			name: "正常系: タイトルのみのテンプレート(スペースは+になる)",
			setup: func(c *Config) {
				c.Templates["simple"] = template.New("Bug: {x}", "")
			},
			template: "simple",
			params:   map[string]string{"x": "A B"},
			want:     "https://github.com/octocat/Hello-World/issues/new?title=Bug%3A+A+B",
		},
		{
			name: "正常系: タイトル・本文・ラベルがすべて揃う場合",
			setup: func(c *Config) {
				c.Templates["crash"] = template.New(
					"Crash: {error_type}",
					"Error: {error_type}",
				).WithLabels("bug", "crash")
			},
			template: "crash",
			params:   map[string]string{"error_type": "NPE"},
			want:     "https://github.com/octocat/Hello-World/issues/new?title=Crash%3A+NPE&body=Error%3A+NPE&labels=bug%2Ccrash",
		},
		{
			name: "正常系: すべて空の場合は?自体が付かない",
			setup: func(c *Config) {
				c.Templates["empty"] = template.New("", "")
			},
			template: "empty",
			params:   map[string]string{},
			want:     "https://github.com/octocat/Hello-World/issues/new",
		},
		{
			name: "正常系: 本文のみの場合はtitle=を出力しない",
			setup: func(c *Config) {
				c.Templates["body-only"] = template.New("", "just a body")
			},
			template: "body-only",
			params:   map[string]string{},
			want:     "https://github.com/octocat/Hello-World/issues/new?body=just+a+body",
		},
		{
			name: "正常系: ラベルは,で連結してから%2Cにエンコードされる",
			setup: func(c *Config) {
				c.Templates["labeled"] = template.New("t", "").WithLabels("bug", "crash")
			},
			template: "labeled",
			params:   map[string]string{},
			want:     "https://github.com/octocat/Hello-World/issues/new?title=t&labels=bug%2Ccrash",
		},
		{
			name: "正常系: ファイル由来のテンプレートも検索される",
			setup: func(c *Config) {
				c.TemplateFiles["from-file"] = template.NewFile("File title: {x}\nbody here")
			},
			template: "from-file",
			params:   map[string]string{"x": "v"},
			want:     "https://github.com/octocat/Hello-World/issues/new?title=File+title%3A+v&body=body+here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newConfig("octocat", "Hello-World")
			tt.setup(cfg)

			got, err := cfg.GenerateURL(tt.template, tt.params)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_GenerateURL_Errors(t *testing.T) {
	t.Run("エラー系: 未登録の名前はその名前を含むエラーになる", func(t *testing.T) {
		cfg := newConfig("octocat", "Hello-World")

		_, err := cfg.GenerateURL("nonexistent", nil)

		require.Error(t, err)
		assert.True(t, IsTemplateNotFound(err))
		assert.EqualError(t, err, "Template 'nonexistent' not found")
	})

	t.Run("エラー系: ファイル由来テンプレートの検証エラーが伝播する", func(t *testing.T) {
		cfg := newConfig("octocat", "Hello-World")
		cfg.TemplateFiles["strict"] = template.NewFile("Title: {x}")

		_, err := cfg.GenerateURL("strict", map[string]string{})

		require.Error(t, err)
		assert.True(t, template.IsParameterMismatch(err))
	})
}

func TestConfig_GenerateURL_LookupPrecedence(t *testing.T) {
	t.Run("正常系: 同名登録ではインラインテンプレートが常に勝つ", func(t *testing.T) {
		cfg := newConfig("octocat", "Hello-World")
		cfg.Templates["dup"] = template.New("inline title", "")
		cfg.TemplateFiles["dup"] = template.NewFile("file title\nfile body")

		got, err := cfg.GenerateURL("dup", nil)

		require.NoError(t, err)
		assert.Equal(t, "https://github.com/octocat/Hello-World/issues/new?title=inline+title", got)
	})

	t.Run("正常系: 衝突時はファイル由来側の検証が走らない", func(t *testing.T) {
		cfg := newConfig("octocat", "Hello-World")
		cfg.Templates["dup"] = template.New("inline", "")
		// ファイル側は必須プレースホルダーを持つが、検索されないため
		// パラメータなしでも成功する
		cfg.TemplateFiles["dup"] = template.NewFile("file: {required}")

		_, err := cfg.GenerateURL("dup", nil)
		assert.NoError(t, err)
	})
}

func TestParseHyperlinkMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    HyperlinkMode
		wantErr bool
	}{
		{name: "正常系: auto", input: "auto", want: HyperlinkAuto},
		{name: "正常系: always", input: "always", want: HyperlinkAlways},
		{name: "正常系: never", input: "never", want: HyperlinkNever},
		{name: "正常系: 空文字はauto", input: "", want: HyperlinkAuto},
		{name: "正常系: 大文字も受け付ける", input: "Always", want: HyperlinkAlways},
		{name: "エラー系: 未知の値", input: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHyperlinkMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
