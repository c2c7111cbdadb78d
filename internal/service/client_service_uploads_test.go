package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/dealer-desk/internal/bus"
	"github.com/MKhiriev/dealer-desk/internal/config"
	"github.com/MKhiriev/dealer-desk/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploadSvc(t *testing.T) (*clientUploadService, *fakeServerAdapter, <-chan bus.Event) {
	t.Helper()
	fakeAdapter := &fakeServerAdapter{}
	eventBus := bus.New()
	t.Cleanup(eventBus.Close)

	events, cancel := eventBus.Subscribe()
	t.Cleanup(cancel)

	cfg := config.ClientUploads{MaxStagedImages: 12, InterUploadPause: time.Millisecond}
	svc := NewClientUploadService(fakeAdapter, eventBus, cfg, logger.Nop()).(*clientUploadService)
	return svc, fakeAdapter, events
}

func stagedFixture(t *testing.T, names ...string) []StagedImage {
	t.Helper()
	dir := t.TempDir()

	staged := make([]StagedImage, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("image bytes"), 0o600))
		staged = append(staged, StagedImage{Path: path, Name: name})
	}
	return staged
}

func collectEvents(t *testing.T, events <-chan bus.Event, n int) []bus.Event {
	t.Helper()
	got := make([]bus.Event, 0, n)
	for len(got) < n {
		select {
		case ev := <-events:
			got = append(got, ev)
		case <-time.After(time.Second):
			t.Fatalf("got %d of %d expected events", len(got), n)
		}
	}
	return got
}

func TestClientUploadService_Enqueue_SequentialWithSingleEventPair(t *testing.T) {
	svc, fakeAdapter, events := newTestUploadSvc(t)

	svc.Enqueue(context.Background(), 7, stagedFixture(t, "a.jpg", "b.jpg", "c.jpg"))
	svc.Wait()

	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, fakeAdapter.addedImages, "files upload in selection order")

	got := collectEvents(t, events, 2)
	require.IsType(t, bus.CarImagesChanged{}, got[0])
	assert.Equal(t, bus.CarImagesChanged{CarID: 7, Status: bus.UploadLoading}, got[0])
	assert.Equal(t, bus.CarImagesChanged{CarID: 7, Status: bus.UploadCompleted}, got[1])

	select {
	case ev := <-events:
		t.Fatalf("extra event %#v: exactly one loading and one completed per batch", ev)
	default:
	}
}

func TestClientUploadService_Enqueue_FailedFileIsSkipped(t *testing.T) {
	svc, fakeAdapter, events := newTestUploadSvc(t)

	fakeAdapter.addImageFn = func(_ context.Context, _ int64, fileName string, _ io.Reader) error {
		if fileName == "b.jpg" {
			return errors.New("boom")
		}
		return nil
	}

	svc.Enqueue(context.Background(), 7, stagedFixture(t, "a.jpg", "b.jpg", "c.jpg"))
	svc.Wait()

	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, fakeAdapter.addedImages, "batch continues past the failed file")

	got := collectEvents(t, events, 2)
	assert.Equal(t, bus.CarImagesChanged{CarID: 7, Status: bus.UploadCompleted}, got[1], "completed fires even with failures inside")
}

func TestClientUploadService_Enqueue_UnreadableFileIsSkipped(t *testing.T) {
	svc, fakeAdapter, events := newTestUploadSvc(t)

	staged := stagedFixture(t, "a.jpg", "c.jpg")
	missing := StagedImage{Path: filepath.Join(t.TempDir(), "gone.jpg"), Name: "gone.jpg"}
	batch := []StagedImage{staged[0], missing, staged[1]}

	svc.Enqueue(context.Background(), 7, batch)
	svc.Wait()

	assert.Equal(t, []string{"a.jpg", "c.jpg"}, fakeAdapter.addedImages)

	got := collectEvents(t, events, 2)
	assert.Equal(t, bus.CarImagesChanged{CarID: 7, Status: bus.UploadCompleted}, got[1])
}

func TestClientUploadService_Enqueue_EmptyBatchIsNoOp(t *testing.T) {
	svc, _, events := newTestUploadSvc(t)

	svc.Enqueue(context.Background(), 7, nil)
	svc.Wait()

	select {
	case ev := <-events:
		t.Fatalf("unexpected event %#v for an empty batch", ev)
	default:
	}
}

func TestClientUploadService_Enqueue_CancelledContextStillCompletes(t *testing.T) {
	svc, _, events := newTestUploadSvc(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc.Enqueue(ctx, 7, stagedFixture(t, "a.jpg", "b.jpg"))
	svc.Wait()

	got := collectEvents(t, events, 2)
	assert.Equal(t, bus.CarImagesChanged{CarID: 7, Status: bus.UploadLoading}, got[0])
	assert.Equal(t, bus.CarImagesChanged{CarID: 7, Status: bus.UploadCompleted}, got[1], "interruption still closes the loading marker")
}
