// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify is the cross-page change notifier.

A browser fires a "storage" event in every other tab when one tab writes to
localStorage, but never in the tab that wrote. Broker reproduces that
contract in-process: each page has an origin, and a page's subscription
never receives events published under its own origin.

	broker := notify.NewBroker()
	sub := broker.Subscribe("electionData_v1", dashboardOrigin)
	defer sub.Close()

	for e := range sub.C() {
		// another page changed the record
	}

Delivery is best-effort. Publish never blocks; a subscriber that has not
drained its buffer misses events, which is harmless for readers that re-read
the whole record on each event.

# Other Processes

FileWatcher watches the directory of a file-backed storage area (fsnotify)
and publishes an event with ExternalOrigin when the watched key holds a
value this process neither wrote nor saw before. Writes are debounced.
FileWatcher is not built for GOOS=js, where the browser's own storage event
plays its part.
*/
package notify
