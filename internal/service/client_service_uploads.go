package service

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/MKhiriev/dealer-desk/internal/adapter"
	"github.com/MKhiriev/dealer-desk/internal/bus"
	"github.com/MKhiriev/dealer-desk/internal/config"
	"github.com/MKhiriev/dealer-desk/internal/logger"
	"github.com/google/uuid"
)

type clientUploadService struct {
	adapter adapter.ServerAdapter
	bus     *bus.Bus
	pause   time.Duration
	logger  *logger.Logger

	wg sync.WaitGroup
}

// NewClientUploadService creates the background image uploader. Batches are
// started by Enqueue; the service itself holds no queue, so batches for
// different vehicles run concurrently while files within one batch stay
// strictly sequential.
func NewClientUploadService(serverAdapter adapter.ServerAdapter, eventBus *bus.Bus, uploadsCfg config.ClientUploads, log *logger.Logger) ClientUploadService {
	return &clientUploadService{
		adapter: serverAdapter,
		bus:     eventBus,
		pause:   uploadsCfg.InterUploadPause,
		logger:  log,
	}
}

// Enqueue implements [ClientUploadService]. The batch goroutine publishes a
// single loading event before the first file and a single completed event
// after the last. A failed file is logged and skipped; the loop continues
// with the next file and nothing is rolled back or reported upward.
func (u *clientUploadService) Enqueue(ctx context.Context, carID int64, files []StagedImage) {
	if len(files) == 0 {
		return
	}

	batch := append([]StagedImage(nil), files...)
	log := &logger.Logger{Logger: u.logger.With().
		Str("batch", uuid.NewString()).
		Int64("car_id", carID).
		Logger()}

	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		u.uploadBatch(ctx, log, carID, batch)
	}()
}

// Wait implements [ClientUploadService].
func (u *clientUploadService) Wait() {
	u.wg.Wait()
}

func (u *clientUploadService) uploadBatch(ctx context.Context, log *logger.Logger, carID int64, files []StagedImage) {
	log.Info().Int("files", len(files)).Msg("starting background image upload")
	u.bus.Publish(bus.CarImagesChanged{CarID: carID, Status: bus.UploadLoading})

	for i, img := range files {
		if err := u.uploadOne(ctx, carID, img); err != nil {
			log.Error().Err(err).Str("file", img.Name).Msg("image upload failed, skipping")
		}

		if i < len(files)-1 {
			select {
			case <-ctx.Done():
				log.Warn().Msg("upload batch interrupted by shutdown")
				u.bus.Publish(bus.CarImagesChanged{CarID: carID, Status: bus.UploadCompleted})
				return
			case <-time.After(u.pause):
			}
		}
	}

	log.Info().Msg("background image upload completed")
	u.bus.Publish(bus.CarImagesChanged{CarID: carID, Status: bus.UploadCompleted})
}

func (u *clientUploadService) uploadOne(ctx context.Context, carID int64, img StagedImage) error {
	f, err := os.Open(img.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	return u.adapter.AddImage(ctx, carID, img.Name, f)
}
