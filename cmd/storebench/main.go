package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/d60-Lab/social-suite/internal/model"
	"github.com/d60-Lab/social-suite/internal/repository"
	"github.com/d60-Lab/social-suite/internal/service"
)

// 对比 file / database 两种后端下定时任务存储的写入、查询与取消性能。
// 写操作在服务层同一把写锁内整集合读写，并发度高时瓶颈在序列化与落盘。

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func envInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func main() {
	N := envInt("N", 2000)
	CONC := envInt("CONC", 8)
	READS := envInt("READS", 2000)

	fmt.Printf("N=%d, CONC=%d, READS=%d\n\n", N, CONC, READS)

	workDir := must(os.MkdirTemp("", "storebench-*"))
	defer os.RemoveAll(workDir)

	runBackend("file", repository.NewFilePostRepository(filepath.Join(workDir, "file")), N, CONC, READS)

	db := must(gorm.Open(sqlite.Open(filepath.Join(workDir, "bench.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}))
	if err := repository.InitSchema(db); err != nil {
		panic(err)
	}
	runBackend("database", repository.NewDBPostRepository(db), N, CONC, READS)
}

func runBackend(name string, repo repository.PostRepository, n, conc, reads int) {
	ctx := context.Background()
	svc := service.NewSchedulerService(repo)
	when := time.Now().Add(24 * time.Hour).UTC().Format(model.ScheduleLayout)

	// 并发创建
	var failed int64
	writeLat := make([]time.Duration, 0, n)
	var mu sync.Mutex

	feed := make(chan int, n)
	for i := 0; i < n; i++ {
		feed <- i
	}
	close(feed)

	t0 := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < conc; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range feed {
				st := time.Now()
				_, _, err := svc.Schedule(ctx, fmt.Sprintf("bench post %d", i), "twitter", when, "")
				d := time.Since(st)
				if err != nil {
					atomic.AddInt64(&failed, 1)
				}
				mu.Lock()
				writeLat = append(writeLat, d)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	createDur := time.Since(t0)

	// 并发查询待发布列表
	readLat := make([]time.Duration, 0, reads)
	readFeed := make(chan struct{}, reads)
	for i := 0; i < reads; i++ {
		readFeed <- struct{}{}
	}
	close(readFeed)

	t1 := time.Now()
	for w := 0; w < conc; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range readFeed {
				st := time.Now()
				_, _ = svc.ListActive(ctx)
				d := time.Since(st)
				mu.Lock()
				readLat = append(readLat, d)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	readDur := time.Since(t1)

	// 取消一半
	posts := must(svc.ListActive(ctx))
	t2 := time.Now()
	cancelled := 0
	for i := 0; i < len(posts); i += 2 {
		if _, err := svc.Cancel(ctx, posts[i].ID); err == nil {
			cancelled++
		}
	}
	cancelDur := time.Since(t2)

	pct := func(vs []time.Duration, p float64) time.Duration {
		if len(vs) == 0 {
			return 0
		}
		xs := append([]time.Duration(nil), vs...)
		sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
		k := int(math.Ceil(p*float64(len(xs)))) - 1
		if k < 0 {
			k = 0
		}
		if k >= len(xs) {
			k = len(xs) - 1
		}
		return xs[k]
	}

	fmt.Printf("===== %s 后端 =====\n", name)
	fmt.Printf("创建 %d 条: total=%v, per op=%v, p50=%v, p95=%v, p99=%v, failed=%d\n",
		n, createDur, createDur/time.Duration(n),
		pct(writeLat, 0.50), pct(writeLat, 0.95), pct(writeLat, 0.99), failed)
	fmt.Printf("ListActive %d 次: total=%v, per op=%v, p50=%v, p95=%v, p99=%v\n",
		reads, readDur, readDur/time.Duration(reads),
		pct(readLat, 0.50), pct(readLat, 0.95), pct(readLat, 0.99))
	fmt.Printf("取消 %d 条: total=%v, per op=%v\n\n", cancelled, cancelDur, cancelDur/time.Duration(max(cancelled, 1)))
}
