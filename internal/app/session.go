package app

import (
	"context"
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/assets"
	"github.com/Faultbox/sceneview/internal/config"
	"github.com/Faultbox/sceneview/internal/engine/camera"
	"github.com/Faultbox/sceneview/internal/engine/lighting"
	"github.com/Faultbox/sceneview/internal/logger"
	"github.com/Faultbox/sceneview/internal/scene"
	"github.com/Faultbox/sceneview/internal/viewer"
)

// LoadState fetches the scene and light assets and builds the viewer state.
//
// Asset failures never abort: an unreadable triangle asset leaves the scene
// empty and an unreadable or empty light asset selects lighting.Default.
// Each fetch waits at most the loader's timeout.
func LoadState(ctx context.Context, cfg *config.Config, loader *assets.Loader) *viewer.State {
	log := logger.Named("assets")
	log.Debug("loading assets",
		zap.String("triangles", cfg.Assets.Triangles),
		zap.String("lights", cfg.Assets.Lights),
		zap.Duration("timeout", loader.Timeout()),
	)

	s := loadScene(ctx, log, cfg.Assets.Triangles, loader)
	light := loadLight(ctx, log, cfg.Assets.Lights, loader)

	cam := camera.New(
		mgl64.Vec3(cfg.Camera.Eye),
		mgl64.Vec3(cfg.Camera.Target),
		mgl64.Vec3(cfg.Camera.Up),
	)

	st := s.Stats()
	hits, misses := loader.Cache().Stats()
	log.Info("scene ready",
		zap.Int("groups", st.Groups),
		zap.Int("vertices", st.Vertices),
		zap.Int("triangles", st.Triangles),
		zap.Int("cache_hits", hits),
		zap.Int("cache_misses", misses),
	)
	return viewer.New(s, cam, light)
}

func loadScene(ctx context.Context, log *zap.Logger, location string, loader *assets.Loader) *scene.Scene {
	raw, err := loader.LoadTriangles(ctx, location)
	if err != nil {
		log.Warn("triangle asset unavailable, scene is empty",
			zap.String("location", location),
			zap.Bool("fetch", errors.Is(err, assets.ErrFetch)),
			zap.Error(err),
		)
	}

	s, err := scene.Build(raw)
	if err != nil {
		log.Warn("triangle asset rejected, scene is empty",
			zap.String("location", location),
			zap.Error(err),
		)
		s, _ = scene.Build(nil)
	}
	return s
}

func loadLight(ctx context.Context, log *zap.Logger, location string, loader *assets.Loader) lighting.PointLight {
	raw, err := loader.LoadLights(ctx, location)
	if err != nil {
		log.Warn("light asset unavailable, using default light",
			zap.String("location", location),
			zap.Error(err),
		)
		return lighting.Default()
	}

	light, ok := lighting.FromAssets(raw)
	if !ok {
		log.Warn("light asset is empty, using default light", zap.String("location", location))
	} else if len(raw) > 1 {
		log.Debug("only the first light is shaded", zap.Int("lights", len(raw)))
	}
	return light
}
