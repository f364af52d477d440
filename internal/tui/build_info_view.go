// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The modern-go-template Authors

package tui

import (
	"bytes"
	"context"
	"fmt"

	"github.com/DehanLUO/modern-go-template/internal/app"
	"github.com/DehanLUO/modern-go-template/internal/report"
	"github.com/DehanLUO/modern-go-template/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const pageTitle = "PROJECT BUILD INFORMATION"

// buildInfoModel shows the build information report in a scrollable page.
//
// tab switches between the library and the binary variant, c copies the
// visible report to the clipboard.
type buildInfoModel struct {
	ctx     context.Context
	svc     service.BuildInfoService
	copyFn  func(string) error
	variant report.Variant

	content  string
	viewport viewport.Model
	ready    bool

	status string
	errMsg string
}

func newBuildInfoModel(ctx context.Context, svc service.BuildInfoService, copyFn func(string) error) *buildInfoModel {
	m := &buildInfoModel{
		ctx:     ctx,
		svc:     svc,
		copyFn:  copyFn,
		variant: report.VariantLibrary,
	}
	m.render()
	return m
}

func (m *buildInfoModel) Init() tea.Cmd {
	return nil
}

func (m *buildInfoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - pageChromeLines
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.viewport.SetContent(m.content)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("%s: %v", app.MsgCopyFailed, msg.err)
			m.status = ""
			return m, nil
		}
		m.errMsg = ""
		m.status = app.MsgCopied
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.variant):
			m.toggleVariant()
			return m, nil
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopy(m.content)
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *buildInfoModel) View() string {
	body := m.content
	if m.ready {
		body = m.viewport.View()
	}

	hotKeys := keys.help()
	switch {
	case m.errMsg != "":
		hotKeys = errorStyle.Render(m.errMsg) + "\n  " + hotKeys
	case m.status != "":
		hotKeys = statusStyle.Render(m.status) + "\n  " + hotKeys
	}

	return renderPage(pageTitle+" ("+string(m.variant)+")", body, hotKeys)
}

func (m *buildInfoModel) toggleVariant() {
	if m.variant == report.VariantLibrary {
		m.variant = report.VariantBinary
	} else {
		m.variant = report.VariantLibrary
	}
	m.status = ""
	m.render()
	if m.ready {
		m.viewport.SetContent(m.content)
		m.viewport.GotoTop()
	}
}

func (m *buildInfoModel) render() {
	var buf bytes.Buffer
	if err := m.svc.Report(m.ctx, &buf, m.variant, report.FormatText); err != nil {
		m.errMsg = fmt.Sprintf("%s: %v", app.MsgReportFailed, err)
		m.content = ""
		return
	}
	m.errMsg = ""
	m.content = buf.String()
}

func (m *buildInfoModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: m.copyFn(text)}
	}
}
