// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pdv-reports-api/internal/config"
	"github.com/vfg2006/pdv-reports-api/internal/domain"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/pdv-reports-api/pkg/utils"
)

var ErrClosingRunning = errors.New("fechamento de caixa já em execução")

type DailyClosingConfig struct {
	CronSchedule string
	Enabled      bool
}

// DailyClosingService gera e registra o relatório do dia (fechamento de caixa)
type DailyClosingService struct {
	scheduler           *gocron.Scheduler
	reporter            reporting.Reporter
	config              DailyClosingConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.SalesReport
}

func NewDailyClosingService(reporter reporting.Reporter, cfg *config.Config) *DailyClosingService {
	closingConfig := DailyClosingConfig{
		CronSchedule: cfg.DailyClosing.CronSchedule,
		Enabled:      cfg.DailyClosing.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": closingConfig.CronSchedule,
		"enabled":       closingConfig.Enabled,
	}).Info("Configuração do agendador de fechamento de caixa carregada")

	return &DailyClosingService{
		scheduler: gocron.NewScheduler(time.Local),
		reporter:  reporter,
		config:    closingConfig,
		now:       time.Now,
	}
}

func (s *DailyClosingService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Fechamento de caixa automático desabilitado por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunClosing(ctx); err != nil {
			logrus.WithError(err).Error("Erro no fechamento de caixa")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento de caixa: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de fechamento de caixa")
		s.scheduler.Stop()
	}()

	return nil
}

// RunClosing gera o relatório do dia corrente
func (s *DailyClosingService) RunClosing(ctx context.Context) (*domain.SalesReport, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Fechamento de caixa já está em execução")
		return nil, ErrClosingRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.syncMutex.Unlock()
	}()

	date := s.now().Format(domain.DateLayout)

	report, err := s.reporter.GetDailyReport(ctx, date)
	if err != nil {
		return nil, err
	}

	s.syncMutex.Lock()
	s.lastReport = report
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"date":        report.Date,
		"total_cash":  report.TotalCash,
		"total_pix":   report.TotalPix,
		"total_debit": report.TotalDebit,
		"total":       report.Total,
		"total_cost":  report.TotalCost,
		"profit":      report.Profit,
		"total_brl":   utils.FormatBRL(report.Total),
		"profit_brl":  utils.FormatBRL(report.Profit),
	}).Info("Fechamento de caixa concluído")

	return report, nil
}

// TriggerManualSync inicia manualmente o fechamento de caixa
func (s *DailyClosingService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento de caixa já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando fechamento de caixa manual")
	go func() {
		if _, err := s.RunClosing(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no fechamento de caixa manual")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DailyClosingService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_report":            s.lastReport,
	}
}
