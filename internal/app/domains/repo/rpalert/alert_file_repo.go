package rpalert

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/atomic"

	"lfp/dpalert/internal/app/domains/entity/etalert"
	"lfp/dpalert/internal/app/pkg/errorx"
)

// alertLine 文件存储的持久化格式，每行一条 JSON
type alertLine struct {
	ID               int64    `json:"id"`
	AnimalID         string   `json:"animal_id"`
	Symptoms         []string `json:"symptoms"`
	PredictedDisease string   `json:"predicted_disease"`
	RiskLevel        string   `json:"risk_level"`
	Action           string   `json:"action"`
	Timestamp        string   `json:"timestamp"`
}

// FileAlertRepository 告警仓储实现（JSON Lines 文件）
// 追加写文件保证持久化，全量记录常驻内存供查询；
// ID 由原子计数器分配，启动时从文件中最大 ID 续接，
// 写路径由互斥锁串行化，避免长度加一式分配在并发下产生重复 ID
type FileAlertRepository struct {
	mu      sync.Mutex
	file    *os.File
	records []*etalert.Alert
	nextID  *atomic.Int64
}

// NewFileAlertRepository 打开（必要时创建）告警日志文件并加载历史记录
func NewFileAlertRepository(path string) (*FileAlertRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errorx.NewStorageError("create data dir", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errorx.NewStorageError("open alert log", err)
	}

	records, maxID, err := loadRecords(file)
	if err != nil {
		file.Close()
		return nil, errorx.NewStorageError("load alert log", err)
	}

	return &FileAlertRepository{
		file:    file,
		records: records,
		nextID:  atomic.NewInt64(maxID),
	}, nil
}

// loadRecords 读取全部历史行，返回记录与当前最大 ID
func loadRecords(file *os.File) ([]*etalert.Alert, int64, error) {
	records := make([]*etalert.Alert, 0)
	var maxID int64

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var al alertLine
		if err := json.Unmarshal(line, &al); err != nil {
			return nil, 0, fmt.Errorf("parse line %d: %w", lineNo, err)
		}

		alert, err := al.toDomain()
		if err != nil {
			return nil, 0, fmt.Errorf("parse line %d: %w", lineNo, err)
		}

		records = append(records, alert)
		if alert.ID > maxID {
			maxID = alert.ID
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}

	return records, maxID, nil
}

// Append 追加告警记录：分配 ID、盖时间戳、写盘、更新内存
func (r *FileAlertRepository) Append(ctx context.Context, alert *etalert.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	alert.ID = r.nextID.Inc()
	alert.Timestamp = time.Now()

	line, err := json.Marshal(fromDomain(alert))
	if err != nil {
		return errorx.NewStorageError("marshal alert", err)
	}
	line = append(line, '\n')

	if _, err := r.file.Write(line); err != nil {
		return errorx.NewStorageError("append alert", err)
	}

	stored := *alert
	stored.Symptoms = append([]string(nil), alert.Symptoms...)
	r.records = append(r.records, &stored)
	return nil
}

// ListByAnimal 从内存中按 animal_id 精确过滤，保持追加顺序
func (r *FileAlertRepository) ListByAnimal(ctx context.Context, animalID string) ([]*etalert.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := make([]*etalert.Alert, 0)
	for _, rec := range r.records {
		if rec.AnimalID == animalID {
			history = append(history, rec)
		}
	}
	return history, nil
}

// Close 关闭日志文件
func (r *FileAlertRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.file.Close()
}

func (al *alertLine) toDomain() (*etalert.Alert, error) {
	ts, err := time.Parse(time.RFC3339Nano, al.Timestamp)
	if err != nil {
		return nil, err
	}

	return &etalert.Alert{
		ID:               al.ID,
		AnimalID:         al.AnimalID,
		Symptoms:         al.Symptoms,
		PredictedDisease: al.PredictedDisease,
		RiskLevel:        al.RiskLevel,
		Action:           al.Action,
		Timestamp:        ts,
	}, nil
}

func fromDomain(alert *etalert.Alert) *alertLine {
	return &alertLine{
		ID:               alert.ID,
		AnimalID:         alert.AnimalID,
		Symptoms:         alert.Symptoms,
		PredictedDisease: alert.PredictedDisease,
		RiskLevel:        alert.RiskLevel,
		Action:           alert.Action,
		Timestamp:        alert.Timestamp.Format(time.RFC3339Nano),
	}
}
