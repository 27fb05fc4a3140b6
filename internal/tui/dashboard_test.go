// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/autobrain/internal/service"
	"github.com/MKhiriev/autobrain/models"
)

type fakeSync struct {
	pending   map[string]int
	pendErr   error
	reports   []models.SyncReport
	syncErr   error
	syncCalls int
	mode      models.SyncMode
}

func (f *fakeSync) SyncEntity(context.Context, string, string, models.SyncMode) (models.SyncReport, error) {
	return models.SyncReport{}, nil
}

func (f *fakeSync) SyncAll(_ context.Context, _ string, mode models.SyncMode) ([]models.SyncReport, error) {
	f.syncCalls++
	f.mode = mode
	return f.reports, f.syncErr
}

func (f *fakeSync) PendingCounts(context.Context, string) (map[string]int, error) {
	return f.pending, f.pendErr
}

func (f *fakeSync) Status() models.SyncStatus {
	return models.SyncStatus{State: models.SyncStateIdle}
}

type fakeScores struct {
	history map[string][]models.AIScore
}

func (f *fakeScores) Generate(context.Context, string, models.Car, *models.MarketSignals) (models.AIScore, error) {
	return models.AIScore{}, nil
}

func (f *fakeScores) History(_ context.Context, _ string, carID string) ([]models.AIScore, error) {
	return f.history[carID], nil
}

type fakeImages struct {
	url string
	got string
}

func (f *fakeImages) FetchImageURL(_ context.Context, _ string, carMake, carModel string, _ int) string {
	f.got = carMake + " " + carModel
	return f.url
}

var testCars = []models.Car{
	{ID: "car-1", Make: "Toyota", Model: "Camry", Year: 2018},
	{ID: "car-2", Make: "Lada", Model: "Vesta", Year: 2021},
}

func newTestModel(syncSvc *fakeSync, scores *fakeScores, images *fakeImages, copied *string) dashboardModel {
	services := &service.ClientServices{
		SyncService:    syncSvc,
		AIScoreService: scores,
		ImageService:   images,
	}
	m := newDashboardModel(context.Background(), services, "user-1", testCars)
	m.copyFn = func(s string) error {
		*copied = s
		return nil
	}
	return m
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m dashboardModel, msg tea.Msg) (dashboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	dm, ok := next.(dashboardModel)
	require.True(t, ok)
	return dm, cmd
}

func TestDashboard_LoadPicksNewestScore(t *testing.T) {
	syncSvc := &fakeSync{pending: map[string]int{models.CollectionReminders: 2}}
	scores := &fakeScores{history: map[string][]models.AIScore{
		"car-1": {{ID: "new", OverallScore: 81}, {ID: "old", OverallScore: 40}},
	}}
	var copied string
	m := newTestModel(syncSvc, scores, &fakeImages{}, &copied)

	msg := m.cmdLoad()()
	loaded, ok := msg.(dashboardLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)

	m, _ = update(t, m, loaded)
	assert.Equal(t, 2, m.pending[models.CollectionReminders])
	assert.Equal(t, "new", m.latest["car-1"].ID)
	_, hasSecond := m.latest["car-2"]
	assert.False(t, hasSecond)
	assert.Contains(t, m.View(), "оценка 81")
}

func TestDashboard_LoadError(t *testing.T) {
	syncSvc := &fakeSync{pendErr: errors.New("dial tcp: connection refused")}
	var copied string
	m := newTestModel(syncSvc, &fakeScores{}, &fakeImages{}, &copied)

	m, _ = update(t, m, m.cmdLoad()())
	assert.Equal(t, "Отсутствует сеть или Сервер недоступен", m.errMsg)
}

func TestDashboard_ManualSync(t *testing.T) {
	syncSvc := &fakeSync{reports: []models.SyncReport{
		{Collection: models.CollectionReminders, Pushed: 2, Pulled: 1},
		{Collection: models.CollectionAIScores, Pushed: 1, Pulled: 3},
	}}
	var copied string
	m := newTestModel(syncSvc, &fakeScores{}, &fakeImages{}, &copied)

	m, cmd := update(t, m, keyPress('s'))
	require.NotNil(t, cmd)
	assert.True(t, m.syncing)

	// повторное нажатие во время синхронизации игнорируется
	_, again := update(t, m, keyPress('s'))
	assert.Nil(t, again)

	done := cmd()
	assert.Equal(t, 1, syncSvc.syncCalls)
	assert.Equal(t, models.SyncModeManual, syncSvc.mode)

	m, reload := update(t, m, done)
	assert.False(t, m.syncing)
	assert.NotNil(t, reload)
	assert.Equal(t, "Синхронизация завершена: отправлено 3, получено 4", m.info)
	assert.Empty(t, m.errMsg)
}

func TestDashboard_ManualSyncFailure(t *testing.T) {
	syncSvc := &fakeSync{syncErr: errors.New("unauthenticated")}
	var copied string
	m := newTestModel(syncSvc, &fakeScores{}, &fakeImages{}, &copied)

	m, cmd := update(t, m, keyPress('s'))
	m, _ = update(t, m, cmd())
	assert.False(t, m.syncing)
	assert.Equal(t, "unauthenticated", m.errMsg)
}

func TestDashboard_CopySelectedCarImage(t *testing.T) {
	images := &fakeImages{url: "https://img.example.com/vesta.jpg"}
	var copied string
	m := newTestModel(&fakeSync{}, &fakeScores{}, images, &copied)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.idx)

	// ниже последней машины курсор не уходит
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.idx)

	m, cmd := update(t, m, keyPress('c'))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, "Lada Vesta", images.got)
	assert.Equal(t, "https://img.example.com/vesta.jpg", copied)
	assert.Contains(t, m.info, "vesta.jpg")
}

func TestDashboard_CopyWithoutCars(t *testing.T) {
	var copied string
	m := newTestModel(&fakeSync{}, &fakeScores{}, &fakeImages{}, &copied)
	m.cars = nil

	m, cmd := update(t, m, keyPress('c'))
	assert.Nil(t, cmd)
	assert.Equal(t, "Нет автомобилей", m.info)
}

func TestDashboard_CopyError(t *testing.T) {
	var copied string
	m := newTestModel(&fakeSync{}, &fakeScores{}, &fakeImages{}, &copied)

	m, _ = update(t, m, imageCopiedMsg{err: errors.New("no clipboard")})
	assert.Equal(t, "Ошибка копирования: no clipboard", m.errMsg)
}

func TestDashboard_Quit(t *testing.T) {
	var copied string
	m := newTestModel(&fakeSync{}, &fakeScores{}, &fakeImages{}, &copied)

	_, cmd := update(t, m, keyPress('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestDashboard_ViewShowsPendingAndSpinner(t *testing.T) {
	var copied string
	m := newTestModel(&fakeSync{}, &fakeScores{}, &fakeImages{}, &copied)
	m.pending = map[string]int{models.CollectionAIScores: 4}

	view := m.View()
	assert.Contains(t, view, models.CollectionAIScores)
	assert.Contains(t, view, "Синхронизация: idle")
	assert.Contains(t, view, "оценки нет")

	m.syncing = true
	assert.Contains(t, m.View(), "Синхронизация...")
}

func TestSyncSummary(t *testing.T) {
	assert.Equal(t, "Синхронизация завершена: отправлено 0, получено 0", syncSummary(nil))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "Ла...", fitText("Лада Веста", 5))
}
