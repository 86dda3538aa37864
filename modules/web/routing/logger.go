// Copyright 2021 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package routing

import (
	"context"
	"net/http"
	"sync"
	"time"

	"code.gitea.io/openid-selector/modules/log"

	"github.com/go-chi/chi/v5"
)

// Event indicates when the printer is triggered
type Event int

const (
	// StartEvent at the beginning of a request
	StartEvent Event = iota

	// StillExecutingEvent the request is still executing
	StillExecutingEvent

	// EndEvent the request has ended (either completed or failed)
	EndEvent
)

type requestRecord struct {
	index          uint64
	startTime      time.Time
	request        *http.Request
	responseWriter *ResponseWriter

	lock       sync.Mutex
	panicError any
}

// Printer is used to output the log for a request
type Printer func(trigger Event, record *requestRecord)

type requestRecordsManager struct {
	print Printer

	lock           sync.Mutex
	requestRecords map[uint64]*requestRecord
	count          uint64
}

// NewLoggerHandler is a handler that will log routing to the router log.
// Requests running longer than slowThreshold are reported once until ctx is done.
func NewLoggerHandler(ctx context.Context, slowThreshold time.Duration) func(next http.Handler) http.Handler {
	manager := &requestRecordsManager{
		requestRecords: map[uint64]*requestRecord{},
		print:          logPrinter(log.GetLogger("router")),
	}
	if slowThreshold > 0 {
		go manager.detectSlowRequests(ctx, slowThreshold)
	}
	return manager.handler
}

var (
	startMessage     = log.NewColoredValueBytes("started  ", log.DEBUG.Color())
	slowMessage      = log.NewColoredValueBytes("slow     ", log.WARN.Color())
	failedMessage    = log.NewColoredValueBytes("failed   ", log.WARN.Color())
	completedMessage = log.NewColoredValueBytes("completed", log.INFO.Color())
)

// routePattern returns the matched chi pattern, the path is used for unmatched requests
func routePattern(req *http.Request) string {
	if rctx := chi.RouteContext(req.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return req.URL.Path
}

func logPrinter(logger log.Logger) Printer {
	return func(trigger Event, record *requestRecord) {
		req := record.request
		if trigger == StartEvent {
			if !logger.IsTrace() {
				return
			}
			logger.Trace("router: %s %v %s for %s", startMessage, log.ColoredMethod(req.Method), req.RequestURI, req.RemoteAddr)
			return
		}

		record.lock.Lock()
		panicErr := record.panicError
		record.lock.Unlock()

		if trigger == StillExecutingEvent {
			logger.Log(0, log.WARN, "router: %s %v %s for %s, elapsed %v @ %s",
				slowMessage,
				log.ColoredMethod(req.Method), req.RequestURI, req.RemoteAddr,
				log.ColoredTime(time.Since(record.startTime)),
				routePattern(req),
			)
			return
		}

		if panicErr != nil {
			logger.Log(0, log.WARN, "router: %s %v %s for %s, panic in %v @ %s, err=%v",
				failedMessage,
				log.ColoredMethod(req.Method), req.RequestURI, req.RemoteAddr,
				log.ColoredTime(time.Since(record.startTime)),
				routePattern(req),
				panicErr,
			)
			return
		}

		status := record.responseWriter.Status()
		logger.Log(0, log.INFO, "router: %s %v %s for %s, %v %v in %v @ %s",
			completedMessage,
			log.ColoredMethod(req.Method), req.RequestURI, req.RemoteAddr,
			log.ColoredStatus(status), log.ColoredStatus(status, http.StatusText(status)), log.ColoredTime(time.Since(record.startTime)),
			routePattern(req),
		)
	}
}

func (manager *requestRecordsManager) detectSlowRequests(ctx context.Context, threshold time.Duration) {
	// after the "slow" log is printed the record is dropped, so every request is reported at most once
	t := time.NewTicker(time.Second)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			now := time.Now()

			var slowRequests []*requestRecord
			manager.lock.Lock()
			for index, record := range manager.requestRecords {
				if now.Sub(record.startTime) < threshold {
					continue
				}
				slowRequests = append(slowRequests, record)
				delete(manager.requestRecords, index)
			}
			manager.lock.Unlock()

			for _, record := range slowRequests {
				manager.print(StillExecutingEvent, record)
			}
		}
	}
}

func (manager *requestRecordsManager) handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		record := &requestRecord{
			startTime:      time.Now(),
			request:        req,
			responseWriter: NewResponseWriter(w),
		}

		manager.lock.Lock()
		record.index = manager.count
		manager.count++
		manager.requestRecords[record.index] = record
		manager.lock.Unlock()

		defer func() {
			localPanicErr := recover()
			if localPanicErr != nil {
				record.lock.Lock()
				record.panicError = localPanicErr
				record.lock.Unlock()
			}

			manager.lock.Lock()
			delete(manager.requestRecords, record.index)
			manager.lock.Unlock()

			manager.print(EndEvent, record)

			if localPanicErr != nil {
				panic(localPanicErr)
			}
		}()

		manager.print(StartEvent, record)
		next.ServeHTTP(record.responseWriter, req)
	})
}
