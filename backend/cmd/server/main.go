package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const configFlag = "config"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "transfer-tracker",
		Short: "태국 이관 제품 관리 시스템 백엔드",
		Long: `태국 이관 제품 관리 시스템 백엔드

서브 커맨드를 생략하면 serve 와 동일하게 HTTP 서버를 실행합니다.

  serve    HTTP 서버 실행 (시작 시 마이그레이션 수행)
  migrate  데이터베이스 마이그레이션만 수행
  seed     번역 카탈로그와 관리자 계정 초기화`,
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.PersistentFlags().String(configFlag, "", "설정 파일 경로 (기본: ./config/config.yaml)")

	root.AddCommand(newServeCommand())
	root.AddCommand(newMigrateCommand())
	root.AddCommand(newSeedCommand())
	return root
}

func main() {
	// SIGINT/SIGTERM 取消根 context，serve 据此优雅关闭
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
