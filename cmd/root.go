package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/douhashi/mushi/internal/config"
	"github.com/douhashi/mushi/internal/logger"
	"github.com/douhashi/mushi/internal/version"
)

var (
	cfgFile   string
	verbose   bool
	repoSpec  string
	hyperlink string
	rootCmd   *cobra.Command
	appLog    logger.Logger
	appConfig *config.Config
)

func init() {
	rootCmd = newRootCmd()
	addCommands(rootCmd)
}

func addCommands(cmd *cobra.Command) {
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newTemplatesCmd())
}

// NewRootCmd creates a new root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := newRootCmd()
	addCommands(cmd)
	return cmd
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mushi",
		Short: "バグ報告用のGitHub issue URLを生成するツール",
		Long: `mushiは、テンプレートとパラメータから事前入力済みの
GitHub issue作成URLを生成するCLIツールです。
既知の不具合に遭遇したとき、その場で報告先リンクを発行できます。`,
		Version: version.Get().Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// 設定ファイルを先に読み込む
			if err := initConfig(); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			// ロガーの初期化
			if verbose {
				os.Setenv("DEBUG", "true")
			}
			var err error
			appLog, err = logger.NewFromEnv()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "設定ファイルのパス")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "詳細出力")
	cmd.PersistentFlags().StringVarP(&repoSpec, "repo", "r", "", "対象リポジトリ (owner/repo または GitHub URL)")
	cmd.PersistentFlags().StringVar(&hyperlink, "hyperlinks", "", "ハイパーリンクの方針 (auto|always|never)")

	return cmd
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig() error {
	appConfig = config.NewConfig()

	path := cfgFile
	if path == "" {
		path = defaultConfigPath()
	}
	if path != "" {
		appConfig.LoadOrDefault(path)
	}

	// フラグは設定ファイルより優先される
	if repoSpec != "" {
		appConfig.GitHub.URL = repoSpec
		appConfig.GitHub.Owner = ""
		appConfig.GitHub.Repo = ""
	}
	if hyperlink != "" {
		appConfig.Hyperlinks = hyperlink
	}

	return nil
}

// defaultConfigPath はカレントディレクトリとホームの設定ファイルを探す
func defaultConfigPath() string {
	if _, err := os.Stat("mushi.yml"); err == nil {
		return "mushi.yml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".config", "mushi", "mushi.yml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
