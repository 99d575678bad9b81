package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"influmarket/internal/domain/repository"
	"influmarket/pkg/errors"
	"influmarket/pkg/logger"
)

const (
	TaskStatePending = "pending"
	TaskStateSuccess = "success"
	TaskStateFailure = "failure"
)

type ExportTask struct {
	ID       string `json:"task_id"`
	State    string `json:"state"`
	Filename string `json:"filename,omitempty"`
}

// ExportUseCase runs campaign CSV exports as background jobs. Callers get a
// task id back immediately and poll until the file is ready.
type ExportUseCase struct {
	campaignRepo repository.CampaignRepository
	brandRepo    repository.BrandRepository
	dir          string

	mu    sync.RWMutex
	tasks map[string]*ExportTask
}

func NewExportUseCase(campaignRepo repository.CampaignRepository, brandRepo repository.BrandRepository, dir string) *ExportUseCase {
	return &ExportUseCase{
		campaignRepo: campaignRepo,
		brandRepo:    brandRepo,
		dir:          dir,
		tasks:        make(map[string]*ExportTask),
	}
}

// Start kicks off an export and returns its task id. The job runs on its own
// context so an early-disconnecting caller does not cancel it.
func (uc *ExportUseCase) Start() string {
	task := &ExportTask{
		ID:    uuid.New().String(),
		State: TaskStatePending,
	}

	uc.mu.Lock()
	uc.tasks[task.ID] = task
	uc.mu.Unlock()

	go uc.run(task.ID)
	return task.ID
}

func (uc *ExportUseCase) Status(taskID string) (*ExportTask, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	task, ok := uc.tasks[taskID]
	if !ok {
		return nil, errors.NotFound("Export task", nil)
	}
	snapshot := *task
	return &snapshot, nil
}

// FilePath returns the on-disk location of a finished export.
func (uc *ExportUseCase) FilePath(taskID string) (string, error) {
	task, err := uc.Status(taskID)
	if err != nil {
		return "", err
	}
	if task.State != TaskStateSuccess {
		return "", errors.Conflict("Export is not ready yet")
	}
	return filepath.Join(uc.dir, task.Filename), nil
}

func (uc *ExportUseCase) run(taskID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	filename, err := uc.writeCSV(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	task := uc.tasks[taskID]
	if err != nil {
		logger.Error("Campaign export %s failed: %v", taskID, err)
		task.State = TaskStateFailure
		return
	}
	task.State = TaskStateSuccess
	task.Filename = filename
}

func (uc *ExportUseCase) writeCSV(ctx context.Context) (string, error) {
	campaigns, _, err := uc.campaignRepo.List(ctx, "", 0, 0)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(uc.dir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("Campaigns_%s.csv", time.Now().Format("20060102150405"))
	f, err := os.Create(filepath.Join(uc.dir, filename))
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"Title", "Brand", "Description", "Start Date", "End Date", "Budget", "Status", "Goals", "Target Audience", "Private"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, campaign := range campaigns {
		brandName := ""
		if brand, err := uc.brandRepo.GetByID(ctx, campaign.BrandID); err == nil {
			brandName = brand.Name
		}

		record := []string{
			campaign.Title,
			brandName,
			campaign.Description,
			formatDate(campaign.StartDate),
			formatDate(campaign.EndDate),
			strconv.FormatFloat(campaign.Budget, 'f', 2, 64),
			campaign.Status,
			campaign.CampaignGoals,
			campaign.TargetAudience,
			strconv.FormatBool(campaign.Private),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return filename, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
