package refresh

// Package refresh coordinates background schedule fetches with the UI. It
// guarantees at most one channel list refresh in flight, triggers refreshes on
// a cron schedule and on user request, runs program fetches for the selected
// channel, and hands every resulting view update to a single consumer loop
// that applies them on the UI thread in the order they were produced.
