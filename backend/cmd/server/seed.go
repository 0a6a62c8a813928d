package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CM6156/CoilmasterThailand/backend/internal/repository"
	"github.com/CM6156/CoilmasterThailand/backend/internal/seed"
)

const demoFlag = "demo"

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "번역 카탈로그와 관리자 계정 초기화",
		Long: `번역 카탈로그(ko/th/en)를 저장하고 관리자 계정을 생성합니다.
여러 번 실행해도 안전합니다. --demo 를 지정하면 고객이 없을 때 예시 데이터를 추가합니다.`,
		RunE: runSeed,
	}
	cmd.Flags().Bool(demoFlag, false, "예시 고객/제품/알림 데이터 추가")
	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	catalogue, err := seed.LoadCatalogue()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	s := seed.New(a.cfg, repository.NewRepository(a.db), catalogue, a.logger)

	if _, err := s.Translations(ctx); err != nil {
		return err
	}
	if _, err := s.Admin(ctx); err != nil {
		return err
	}
	if demo, _ := cmd.Flags().GetBool(demoFlag); demo {
		if _, err := s.Demo(ctx); err != nil {
			return err
		}
	}

	a.logger.Info("初始化数据完成", zap.Bool("demo", cmd.Flags().Changed(demoFlag)))
	return nil
}
