package cmd

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed templates/*
var templateFS embed.FS

// モック用の関数変数
var (
	writeFileFunc = os.WriteFile
	mkdirAllFunc  = os.MkdirAll
	statFunc      = os.Stat
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "設定ファイルの雛形を作成",
		Long: `カレントディレクトリにmushi.ymlとサンプルのテンプレートファイルを
作成します。既存のファイルは--forceを指定しない限り上書きしません。`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			files := map[string]string{
				"templates/mushi.yml":       "mushi.yml",
				"templates/crash_report.md": filepath.Join("templates", "crash_report.md"),
			}

			for src, dst := range files {
				if !force {
					if _, err := statFunc(dst); err == nil {
						fmt.Fprintf(out, "スキップ: %s は既に存在します\n", dst)
						continue
					}
				}

				content, err := templateFS.ReadFile(src)
				if err != nil {
					return fmt.Errorf("failed to read embedded template %s: %w", src, err)
				}

				if dir := filepath.Dir(dst); dir != "." {
					if err := mkdirAllFunc(dir, 0755); err != nil {
						return fmt.Errorf("failed to create directory %s: %w", dir, err)
					}
				}

				if err := writeFileFunc(dst, content, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", dst, err)
				}
				fmt.Fprintf(out, "作成: %s\n", dst)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "既存のファイルを上書きする")

	return cmd
}
