// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/autobrain/internal/service"
	"github.com/MKhiriev/autobrain/models"
)

const refreshInterval = 5 * time.Second

type dashboardModel struct {
	ctx    context.Context
	sync   service.ClientSyncService
	scores service.ClientAIScoreService
	images service.ClientImageService
	copyFn func(string) error

	userID string
	cars   []models.Car

	spinner spinner.Model
	pending map[string]int
	latest  map[string]models.AIScore
	status  models.SyncStatus
	idx     int
	syncing bool
	info    string
	errMsg  string
}

func newDashboardModel(ctx context.Context, services *service.ClientServices, userID string, cars []models.Car) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return dashboardModel{
		ctx:     ctx,
		sync:    services.SyncService,
		scores:  services.AIScoreService,
		images:  services.ImageService,
		copyFn:  clipboard.WriteAll,
		userID:  userID,
		cars:    cars,
		spinner: s,
		status:  models.SyncStatus{State: models.SyncStateIdle},
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad(), cmdTick())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case refreshMsg:
		return m, tea.Batch(m.cmdLoad(), cmdTick())
	case dashboardLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.pending = msg.pending
		m.latest = msg.latest
		m.status = msg.status
		return m, nil
	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.info = ""
			m.errMsg = humanizeServerUnavailableError(msg.err)
		} else {
			m.errMsg = ""
			m.info = syncSummary(msg.reports)
		}
		return m, m.cmdLoad()
	case imageCopiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.info = "Скопировано: " + msg.url
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m dashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.cars)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		return m, m.cmdLoad()
	case key.Matches(msg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.info = "Синхронизация..."
		m.errMsg = ""
		return m, m.cmdSync()
	case key.Matches(msg, keys.copy):
		car, ok := m.current()
		if !ok {
			m.info = "Нет автомобилей"
			return m, nil
		}
		return m, m.cmdCopyImage(car)
	}

	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(m.viewSyncState())
	b.WriteString("\n\n")

	b.WriteString("Ожидают отправки:\n")
	for _, collection := range models.SyncedCollections {
		n := m.pending[collection]
		line := fmt.Sprintf("  %-22s %d", collection, n)
		if n > 0 {
			line = pendingStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\nАвтомобили:\n")
	if len(m.cars) == 0 {
		b.WriteString("  -\n")
	}
	for i, car := range m.cars {
		line := fmt.Sprintf("%s %s %d  %s", car.Make, car.Model, car.Year, m.scoreLine(car.ID))
		line = fitText(line, 60)
		if i == m.idx {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.info != "" {
		b.WriteString("\n")
		b.WriteString(m.info)
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage("AutoBrain", b.String(), "s: синхронизация  c: копировать фото  r: обновить  q: выход")
}

func (m dashboardModel) viewSyncState() string {
	if m.syncing || m.status.State == models.SyncStateRunning {
		return m.spinner.View() + " Синхронизация..."
	}

	line := "Синхронизация: " + string(m.status.State)
	if m.status.LastSuccessAt != nil {
		line += ", успешно " + m.status.LastSuccessAt.Local().Format("02.01 15:04")
	}
	if m.status.State == models.SyncStateFailed && m.status.LastError != "" {
		line += "\n" + errorStyle.Render(fitText(m.status.LastError, 80))
	}
	return line
}

func (m dashboardModel) scoreLine(carID string) string {
	score, ok := m.latest[carID]
	if !ok {
		return "оценки нет"
	}
	return fmt.Sprintf("оценка %d (тех %d, ТО %d, рынок %d)",
		score.OverallScore, score.TechnicalScore, score.MaintenanceScore, score.MarketScore)
}

func (m dashboardModel) current() (models.Car, bool) {
	if m.idx < 0 || m.idx >= len(m.cars) {
		return models.Car{}, false
	}
	return m.cars[m.idx], true
}

func (m dashboardModel) cmdLoad() tea.Cmd {
	ctx, userID, cars := m.ctx, m.userID, m.cars
	syncSvc, scores := m.sync, m.scores

	return func() tea.Msg {
		pending, err := syncSvc.PendingCounts(ctx, userID)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		latest := make(map[string]models.AIScore, len(cars))
		for _, car := range cars {
			history, err := scores.History(ctx, userID, car.ID)
			if err != nil {
				return dashboardLoadedMsg{err: err}
			}
			if len(history) > 0 {
				latest[car.ID] = history[0]
			}
		}

		return dashboardLoadedMsg{pending: pending, latest: latest, status: syncSvc.Status()}
	}
}

func (m dashboardModel) cmdSync() tea.Cmd {
	ctx, userID, syncSvc := m.ctx, m.userID, m.sync

	return func() tea.Msg {
		reports, err := syncSvc.SyncAll(ctx, userID, models.SyncModeManual)
		return syncDoneMsg{reports: reports, err: err}
	}
}

func (m dashboardModel) cmdCopyImage(car models.Car) tea.Cmd {
	ctx, userID, images, copyFn := m.ctx, m.userID, m.images, m.copyFn

	return func() tea.Msg {
		url := images.FetchImageURL(ctx, userID, car.Make, car.Model, car.Year)
		return imageCopiedMsg{url: url, err: copyFn(url)}
	}
}

func cmdTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return refreshMsg{} })
}

func syncSummary(reports []models.SyncReport) string {
	var pushed, pulled int
	for _, r := range reports {
		pushed += r.Pushed
		pulled += r.Pulled
	}
	return fmt.Sprintf("Синхронизация завершена: отправлено %d, получено %d", pushed, pulled)
}
