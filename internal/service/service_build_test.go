package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/rjs-config-gen/internal/mock"
	"github.com/MKhiriev/rjs-config-gen/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBuildService_Build_NoSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := mock.NewMockRequestLog(ctrl)
	capture := mock.NewMockCaptureCache(ctrl)
	capture.EXPECT().Latest().Return(models.ClientConfig{}, false)
	// no bundles declared: the request log is not read
	log.EXPECT().Snapshot().Times(0)

	got := NewBuildService(models.StaticConfig{}, log, capture).Build(context.Background())

	assert.Equal(t, models.OptimizeNone, got.Optimize)
	assert.Empty(t, got.Deps)
	assert.NotNil(t, got.Modules)
}

func TestBuildService_Build_CaptureOverridesFilePerKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	static := models.StaticConfig{
		BuildConfig: models.BuildConfig{
			Paths:    map[string]string{"jquery": "file/jquery", "text": "mage/requirejs/text"},
			Optimize: models.OptimizeUglify,
		},
	}
	capture := mock.NewMockCaptureCache(ctrl)
	capture.EXPECT().Latest().Return(models.ClientConfig{
		Paths: map[string]string{"jquery": "captured/jquery"},
	}, true)

	got := NewBuildService(static, mock.NewMockRequestLog(ctrl), capture).Build(context.Background())

	assert.Equal(t, "captured/jquery", got.Paths["jquery"])
	assert.Equal(t, "mage/requirejs/text", got.Paths["text"])
	assert.Equal(t, models.OptimizeUglify, got.Optimize)
}

func TestBuildService_Build_ExpandsBundlesFromLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	static := models.StaticConfig{
		Bundles: []models.Bundle{{Name: "bundles/home", URLs: []string{"/"}}},
	}

	log := mock.NewMockRequestLog(ctrl)
	log.EXPECT().Snapshot().Return(models.SeedData{ReqLog: []models.RequestRecord{
		{Seq: 1, Method: "GET", Path: "/js/app.js", Referrer: "http://example.com/"},
	}})
	capture := mock.NewMockCaptureCache(ctrl)
	capture.EXPECT().Latest().Return(models.ClientConfig{BaseURL: "/js"}, true)

	got := NewBuildService(static, log, capture).Build(context.Background())

	require.Len(t, got.Modules, 1)
	assert.Equal(t, models.BuildModule{Name: "bundles/home", Include: []string{"app"}, Create: true}, got.Modules[0])
}
