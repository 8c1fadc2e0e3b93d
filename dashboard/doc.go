// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dashboard renders live tallies.

Render reads the record and draws one section per position, in the order the
positions appear in the record, one row per candidate. Rendering only reads,
so calling it twice with no write in between draws the same counts.

# Refresh Cycle

	Idle → Refreshing (note: reason) → Idle (note: "Tallies updated.")

RefreshWithDelay shows the reason, waits the refresh delay (500ms by
default), renders, then shows the completion note. Run triggers it for:

  - a manual refresh: "Manual refresh triggered..."
  - a change event from another page: "Detected new votes from another page..."

Each trigger gets its own refresh. Two overlapping refreshes may interleave
their notes; both read the same record, so the worst case is a redundant
redraw.
*/
package dashboard
