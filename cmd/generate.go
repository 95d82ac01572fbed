package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var paramFlags []string

	cmd := &cobra.Command{
		Use:   "generate <template>",
		Short: "テンプレートからissue URLを生成",
		Long: `登録済みのテンプレートにパラメータを適用し、
事前入力済みのGitHub issue作成URLをstdoutに出力します。`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			params, err := parseParams(paramFlags)
			if err != nil {
				return err
			}

			if err := appConfig.Validate(); err != nil {
				return err
			}

			handle, err := appConfig.BuildHandle()
			if err != nil {
				return err
			}

			appLog.Debug("generating issue URL",
				"template", name,
				"params", len(params),
			)

			url, err := handle.GenerateURL(name, params)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&paramFlags, "param", "p", nil, "プレースホルダーの値 (key=value、繰り返し可)")

	return cmd
}
