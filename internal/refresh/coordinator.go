package refresh

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/ytget/radio-schedule/internal/logger"
	"github.com/ytget/radio-schedule/internal/model"
	"github.com/ytget/radio-schedule/internal/schedule"
)

// Defaults
const (
	DefaultSchedule   = "@every 1h"
	updateQueueLength = 64
)

// Coordinator owns the channel refresh guard and the update queue.
type Coordinator struct {
	fetcher  schedule.Fetcher
	view     View
	dispatch Dispatcher
	log      *logrus.Entry

	// inFlight has capacity one; holding it means a channel refresh is running.
	inFlight *semaphore.Weighted

	updates chan func()
	ctx     context.Context
	cancel  context.CancelFunc
	workers sync.WaitGroup

	cron     *cron.Cron
	schedule string
	stopOnce sync.Once
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithDispatcher sets how updates reach the UI thread. The default calls
// the update directly on the consumer goroutine.
func WithDispatcher(d Dispatcher) Option {
	return func(c *Coordinator) {
		if d != nil {
			c.dispatch = d
		}
	}
}

// WithSchedule sets the cron spec for periodic channel refreshes.
func WithSchedule(spec string) Option {
	return func(c *Coordinator) {
		if spec != "" {
			c.schedule = spec
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *logrus.Entry) Option {
	return func(c *Coordinator) {
		if log != nil {
			c.log = log
		}
	}
}

// NewCoordinator creates a coordinator and starts its update loop.
func NewCoordinator(fetcher schedule.Fetcher, view View, opts ...Option) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Coordinator{
		fetcher:  fetcher,
		view:     view,
		dispatch: func(fn func()) { fn() },
		log:      logger.Discard(),
		inFlight: semaphore.NewWeighted(1),
		updates:  make(chan func(), updateQueueLength),
		ctx:      ctx,
		cancel:   cancel,
		schedule: DefaultSchedule,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cron = cron.New(cron.WithLogger(cron.PrintfLogger(c.log)))

	go c.loop()
	return c
}

// Start runs an initial channel refresh and schedules the periodic ones.
func (c *Coordinator) Start() error {
	if _, err := c.cron.AddFunc(c.schedule, c.RequestChannelRefresh); err != nil {
		return fmt.Errorf("schedule channel refresh %q: %w", c.schedule, err)
	}
	c.cron.Start()
	c.log.WithField("schedule", c.schedule).Info("channel refresh scheduled")

	c.RequestChannelRefresh()
	return nil
}

// Stop halts the periodic trigger and the update loop. Fetches still running
// see their context cancelled and their pending updates are dropped.
func (c *Coordinator) Stop() {
	c.stopOnce.Do(func() {
		c.cron.Stop()
		c.cancel()
	})
}

// Wait blocks until every started fetch has finished and all updates it
// produced have been dispatched.
func (c *Coordinator) Wait() {
	c.workers.Wait()
	done := make(chan struct{})
	if !c.post(func() { close(done) }) {
		return
	}
	select {
	case <-done:
	case <-c.ctx.Done():
	}
}

// RequestChannelRefresh starts a channel list fetch unless one is already
// running, in which case it does nothing.
func (c *Coordinator) RequestChannelRefresh() {
	if !c.inFlight.TryAcquire(1) {
		c.log.Debug("channel refresh already in progress")
		return
	}

	runID := uuid.NewString()
	log := c.log.WithFields(logrus.Fields{"run": runID, "op": "channels"})
	log.Info("channel refresh started")

	c.post(func() {
		c.view.ClearChannelList()
		c.view.SetUpdateButtonStatus(false)
		c.view.SetDescriptionLabel("")
		c.view.SetChannelPicture(nil)
		c.view.SetProgramPicture(nil)
		c.view.SetRefreshStatus(model.RefreshStatusRefreshing)
	})

	c.workers.Add(1)
	go func() {
		defer c.workers.Done()

		status := c.runChannelRefresh(log)
		c.inFlight.Release(1)

		c.post(func() {
			c.view.SetUpdateButtonStatus(true)
			c.view.SetChannelTableEnabled(true)
			c.view.SetRefreshStatus(status)
		})
	}()
}

func (c *Coordinator) runChannelRefresh(log *logrus.Entry) model.RefreshStatus {
	channels, err := c.fetcher.FetchChannels(c.ctx)
	if err != nil {
		log.WithError(err).Error("channel refresh failed")
		c.post(func() { c.view.PopUp(MessageChannelFetchFailed) })
		return model.RefreshStatusFailed
	}
	if len(channels) == 0 {
		log.Warn("channel refresh returned no channels")
		c.post(func() { c.view.PopUp(MessageNoChannels) })
		return model.RefreshStatusEmpty
	}

	for _, ch := range channels {
		if !c.post(func() { c.view.AddChannel(ch) }) {
			break
		}
	}
	log.WithField("count", len(channels)).Info("channel refresh completed")
	return model.RefreshStatusCompleted
}

// RequestProgramRefresh replaces the program list with channel's schedule.
// It is not guarded: each call starts its own fetch. Fetch failures are
// logged only and leave the program list empty.
func (c *Coordinator) RequestProgramRefresh(channel *model.Channel) {
	if channel == nil {
		return
	}

	runID := uuid.NewString()
	log := c.log.WithFields(logrus.Fields{"run": runID, "op": "programs", "channel": channel.ID})
	log.Debug("program refresh started")

	c.post(func() {
		c.view.SetChannelTableEnabled(false)
		c.view.SetChannelPicture(channel.Logo())
		c.view.ClearProgramList()
	})

	c.workers.Add(1)
	go func() {
		defer c.workers.Done()

		programs, err := c.fetcher.FetchPrograms(c.ctx, channel)
		if err != nil {
			log.WithError(err).Warn("program refresh failed")
		} else {
			channel.SetPrograms(programs)
			for _, p := range programs {
				if !c.post(func() { c.view.AddProgram(p) }) {
					break
				}
			}
			log.WithField("count", len(programs)).Debug("program refresh completed")
		}

		c.post(func() { c.view.SetChannelTableEnabled(true) })
	}()
}

// ShowProgram displays the description and logo of program.
func (c *Coordinator) ShowProgram(program *model.Program) {
	if program == nil {
		return
	}
	c.post(func() {
		c.view.SetDescriptionLabel(program.Description)
		c.view.SetProgramPicture(program.Logo)
	})
}

// post queues fn for the UI thread. It reports false once the coordinator
// has been stopped.
func (c *Coordinator) post(fn func()) bool {
	if c.ctx.Err() != nil {
		return false
	}
	select {
	case c.updates <- fn:
		return true
	case <-c.ctx.Done():
		return false
	}
}

func (c *Coordinator) loop() {
	for c.ctx.Err() == nil {
		select {
		case fn := <-c.updates:
			c.dispatch(fn)
		case <-c.ctx.Done():
			return
		}
	}
}
