package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/douhashi/mushi/internal/template"
)

func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "登録済みテンプレートの一覧を表示",
		Long: `設定ファイルに登録されたテンプレートと、
それぞれが必要とするプレースホルダーを一覧表示します。`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appConfig.Validate(); err != nil {
				return err
			}

			handle, err := appConfig.BuildHandle()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cfg := handle.Config()

			if len(cfg.Templates)+len(cfg.TemplateFiles) == 0 {
				fmt.Fprintln(out, "テンプレートが登録されていません")
				return nil
			}

			// インラインが検索で優先されるため、先に表示する
			for _, name := range sortedKeys(cfg.Templates) {
				tmpl := cfg.Templates[name]
				placeholders := template.ExtractPlaceholders(tmpl.Title + "\n" + tmpl.Body)
				printTemplate(out, name, "inline", placeholders, tmpl.Labels)
			}
			for _, name := range sortedKeys(cfg.TemplateFiles) {
				file := cfg.TemplateFiles[name]
				if _, shadowed := cfg.Templates[name]; shadowed {
					// 同名のインラインテンプレートに隠されている
					continue
				}
				placeholders := template.ExtractPlaceholders(file.Content)
				printTemplate(out, name, "file", placeholders, file.Labels)
			}

			return nil
		},
	}

	return cmd
}

func printTemplate(out io.Writer, name, kind string, placeholders, labels []string) {
	fmt.Fprintf(out, "%s (%s)\n", name, kind)
	if len(placeholders) > 0 {
		fmt.Fprintf(out, "  placeholders: %s\n", strings.Join(placeholders, ", "))
	}
	if len(labels) > 0 {
		fmt.Fprintf(out, "  labels: %s\n", strings.Join(labels, ", "))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
