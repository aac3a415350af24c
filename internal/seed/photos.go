package seed

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// seedPhotoPrefix tags generated photo ids and file names so clear can find
// the physical files again.
const seedPhotoPrefix = "seedphoto"

const photoScheduleSize = 12

var photoCategories = []string{"front", "side", "back"}

// PhotoFetcher retrieves a placeholder image by numeric id. The default
// implementation downloads from picsum.photos.
type PhotoFetcher interface {
	Fetch(id, width, height int) ([]byte, error)
}

type httpPhotoFetcher struct {
	client  *http.Client
	baseURL string
}

func NewHTTPPhotoFetcher() PhotoFetcher {
	return &httpPhotoFetcher{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: "https://picsum.photos",
	}
}

func (f *httpPhotoFetcher) Fetch(id, width, height int) ([]byte, error) {
	url := fmt.Sprintf("%s/id/%d/%d/%d", f.baseURL, id, width, height)
	resp, err := f.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch photo %d: %w", id, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch photo %d: unexpected status %d", id, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read photo %d: %w", id, err)
	}
	return data, nil
}

// seedProgressPhotos distributes a fixed 12-photo schedule across the
// history window, cycling front/side/back with a weight that declines along
// the same trend the weight series follows. A failed download skips that
// single photo and the step still succeeds.
func (s *Seeder) seedProgressPhotos() (int, error) {
	fetcher := s.opts.Fetcher
	if fetcher == nil && !s.opts.SkipPhotos {
		fetcher = NewHTTPPhotoFetcher()
	}

	photosDir := s.opts.PhotosDir
	if photosDir != "" {
		if err := os.MkdirAll(photosDir, 0o755); err != nil {
			return 0, fmt.Errorf("create photos directory: %w", err)
		}
	}

	interval := s.historyDays / photoScheduleSize
	if interval < 1 {
		interval = 1
	}

	var rows [][]any
	for i := 0; i < photoScheduleSize; i++ {
		offset := s.historyDays - i*interval
		if offset < 0 {
			break
		}
		date := daysAgo(offset)
		takenAt, err := s.rng.mealTimeOfDay(date, "breakfast")
		if err != nil {
			return 0, err
		}

		weight := clamp(baselineWeightKg+float64(s.historyDays-offset)*dailyDriftKg+s.rng.Gaussian(0, 0.3),
			minHumanWeightKg, maxHumanWeightKg)

		id := fmt.Sprintf("%s-%d-%d", seedPhotoPrefix, takenAt.UnixMilli(), i)
		fileName := id + ".jpg"
		thumbName := id + "-thumb.jpg"
		filePath := filepath.Join(photosDir, fileName)
		thumbPath := filepath.Join(photosDir, thumbName)

		if s.opts.SkipPhotos || photosDir == "" {
			// Offline mode: rows reference placeholder paths, no files.
			filePath = filepath.Join("placeholder", fileName)
			thumbPath = filepath.Join("placeholder", thumbName)
		} else {
			imageID := 100 + i
			full, err := fetcher.Fetch(imageID, 600, 800)
			if err != nil {
				s.warnf("progress photo %d skipped: %v", i, err)
				continue
			}
			thumb, err := fetcher.Fetch(imageID, 150, 200)
			if err != nil {
				s.warnf("progress photo %d thumbnail skipped: %v", i, err)
				continue
			}
			if err := os.WriteFile(filePath, full, 0o644); err != nil {
				return len(rows), fmt.Errorf("write photo file: %w", err)
			}
			if err := os.WriteFile(thumbPath, thumb, 0o644); err != nil {
				return len(rows), fmt.Errorf("write thumbnail file: %w", err)
			}
		}

		rows = append(rows, []any{
			id,
			takenAt.Format(time.RFC3339),
			photoCategories[i%len(photoCategories)],
			round(weight, 1),
			filePath,
			thumbPath,
			1,
		})
	}

	written, err := batchInsert(s.db, "progress_photos",
		[]string{"id", "taken_at", "category", "weight_kg", "file_path", "thumbnail_path", "is_private"}, rows, 0)
	if err != nil {
		return written, fmt.Errorf("seed progress photos: %w", err)
	}
	return written, nil
}

// seedPhotoComparisons pairs chronologically symmetric photos oldest to
// newest, at most four pairs, and only when at least two photos exist.
func (s *Seeder) seedPhotoComparisons() (int, error) {
	rows, err := s.db.Query(`SELECT id FROM progress_photos ORDER BY taken_at ASC`)
	if err != nil {
		return 0, fmt.Errorf("read progress photos: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("scan progress photo: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate progress photos: %w", err)
	}
	if len(ids) < 2 {
		return 0, nil
	}

	pairs := len(ids) / 2
	if pairs > 4 {
		pairs = 4
	}
	out := make([][]any, 0, pairs)
	for i := 0; i < pairs; i++ {
		out = append(out, []any{
			s.rng.generateID("comp"),
			ids[i],
			ids[len(ids)-1-i],
		})
	}

	written, err := batchInsert(s.db, "photo_comparisons",
		[]string{"id", "before_photo_id", "after_photo_id"}, out, 0)
	if err != nil {
		return written, fmt.Errorf("seed photo comparisons: %w", err)
	}
	return written, nil
}
