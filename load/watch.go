package load

import (
	"context"
	"cycle/types"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// WatchDelay 文件变更去抖间隔
var WatchDelay = 200 * time.Millisecond

// Watch 监视工况文件，每次变更后重新加载并回调。
// 监视所在目录以兼容编辑器的替换式保存；阻塞直到 ctx 结束。
func Watch(ctx context.Context, filename string, logger zerolog.Logger, fn func(types.CycleSpecification, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("创建文件监视失败: %w", err)
	}
	defer watcher.Close()

	name, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(name)); err != nil {
		return fmt.Errorf("监视 %s 失败: %w", filename, err)
	}
	logger = logger.With().Str("file", filename).Logger()
	logger.Info().Msg("开始监视工况文件")

	var timer *time.Timer
	reload := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug().Str("op", event.Op.String()).Msg("工况文件变更")
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(WatchDelay, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case <-reload:
			spec, err := LoadFile(filename)
			if err != nil {
				logger.Warn().Err(err).Msg("重新加载失败")
			}
			fn(spec, err)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("文件监视错误")
		}
	}
}
