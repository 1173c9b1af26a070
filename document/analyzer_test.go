package document

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/promptctl/client"
	"github.com/randalmurphal/promptctl/config"
	"github.com/randalmurphal/promptctl/model"
)

func TestAnalyze(t *testing.T) {
	path := writeDoc(t, "report.md", "quarterly revenue grew in every region")
	mock := client.NewMock(`{
		"summary": "A revenue report.",
		"key_points": ["Revenue grew"],
		"entities": ["ACME"],
		"themes": ["growth"]
	}`)
	a := NewAnalyzer(mock, config.Defaults())

	analysis, err := a.Analyze(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, "A revenue report.", analysis.Summary)
	assert.Equal(t, []string{"Revenue grew"}, analysis.KeyPoints)
	assert.Equal(t, []string{"ACME"}, analysis.Entities)
	assert.Equal(t, []string{"growth"}, analysis.Themes)
	assert.Equal(t, 6, analysis.WordCount)
	assert.Equal(t, string(model.Default), analysis.Model)

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	assert.Equal(t, 4096, req.MaxTokens)
	assert.Zero(t, req.Temperature)
	assert.Contains(t, req.Messages[0].Content, "quarterly revenue")
}

func TestAnalyze_UnparseableFallsBack(t *testing.T) {
	path := writeDoc(t, "report.txt", "content")
	mock := client.NewMock("The document discusses revenue.")
	a := NewAnalyzer(mock, config.Defaults())

	analysis, err := a.Analyze(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, "The document discusses revenue.", analysis.Summary)
	assert.Empty(t, analysis.KeyPoints)
}

func TestAnalyze_ModelOverride(t *testing.T) {
	path := writeDoc(t, "report.txt", "content")
	mock := client.NewMock(`{"summary": "ok"}`)
	a := NewAnalyzer(mock, config.Defaults())

	analysis, err := a.Analyze(context.Background(), path, string(model.Haiku))
	require.NoError(t, err)
	assert.Equal(t, string(model.Haiku), analysis.Model)
	assert.Equal(t, string(model.Haiku), mock.Calls[0].Model)
}

func TestAnalyze_ReadError(t *testing.T) {
	a := NewAnalyzer(client.NewMock(), config.Defaults())

	_, err := a.Analyze(context.Background(), "missing.txt", "")
	assert.ErrorIs(t, err, ErrInput)
}

func TestAsk(t *testing.T) {
	path := writeDoc(t, "spec.yaml", "name: test\nversion: '1'")
	mock := client.NewMock(`{
		"answer": "The name is test.",
		"confidence": "high",
		"source_quotes": ["name: test"]
	}`)
	a := NewAnalyzer(mock, config.Defaults())

	answer, err := a.Ask(context.Background(), path, "What is the name?", "")
	require.NoError(t, err)
	assert.Equal(t, "The name is test.", answer.Answer)
	assert.Equal(t, "high", answer.Confidence)
	assert.Equal(t, []string{"name: test"}, answer.SourceQuotes)

	// Document travels in a cached system block; the question is the only
	// user message.
	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	require.Len(t, req.SystemBlocks, 2)
	assert.True(t, req.SystemBlocks[0].Cache)
	assert.Contains(t, req.SystemBlocks[0].Text, "name: test")
	assert.False(t, req.SystemBlocks[1].Cache)
	assert.Equal(t, "What is the name?", req.Messages[0].Content)
}

func TestAsk_UnparseableFallsBack(t *testing.T) {
	path := writeDoc(t, "spec.txt", "content")
	mock := client.NewMock("it is test")
	a := NewAnalyzer(mock, config.Defaults())

	answer, err := a.Ask(context.Background(), path, "name?", "")
	require.NoError(t, err)
	assert.Equal(t, "it is test", answer.Answer)
	assert.Empty(t, answer.Confidence)
}

func TestSummarize_Direct(t *testing.T) {
	path := writeDoc(t, "report.md", "short document body")
	mock := client.NewMock(`{
		"executive_summary": "Short and sweet.",
		"sections": ["Intro", "Body"]
	}`)
	a := NewAnalyzer(mock, config.Defaults())

	summary, err := a.Summarize(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, "Short and sweet.", summary.ExecutiveSummary)
	assert.Equal(t, []string{"Intro", "Body"}, summary.Sections)
	assert.Equal(t, 1, summary.ChunksProcessed)
	require.Len(t, mock.Calls, 1)
}

func TestSummarize_ClientError(t *testing.T) {
	path := writeDoc(t, "report.md", "body")
	sendErr := errors.New("boom")
	a := NewAnalyzer(client.NewMock().WithError(sendErr), config.Defaults())

	_, err := a.Summarize(context.Background(), path, "")
	assert.ErrorIs(t, err, sendErr)
}
