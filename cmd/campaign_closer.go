package main

import (
	"context"
	"log"
	"time"

	"influBack/internal/repositories"
)

const campaignCloserTimeout = 1 * time.Minute

// startCampaignCloser moves ongoing campaigns whose end date has passed to
// completed. Runs once at startup and then hourly.
func startCampaignCloser(ctx context.Context, repo *repositories.CampaignRepository, infoLog, errorLog *log.Logger) {
	if repo == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		runOnce := func() {
			runCtx, cancel := context.WithTimeout(ctx, campaignCloserTimeout)
			closed, err := repo.CloseExpired(runCtx, time.Now().UTC())
			cancel()
			if err != nil {
				if errorLog != nil {
					errorLog.Printf("campaign closer: failed to close expired campaigns: %v", err)
				}
			} else if closed > 0 && infoLog != nil {
				infoLog.Printf("campaign closer: completed %d expired campaigns", closed)
			}
		}

		runOnce()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runOnce()
			}
		}
	}()
}
