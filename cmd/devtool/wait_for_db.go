package main

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

const (
	defaultWaitAttempts = 30
	waitRetryInterval   = 2 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for the inventory database to accept connections [attempts]"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	maxRetries := defaultWaitAttempts
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("attempts must be a positive integer, got %q", args[0])
		}
		maxRetries = n
	}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		pool, err := connect(context.Background())
		if err == nil {
			pool.Close()
			PrintSuccess("Database is ready")
			return nil
		}
		lastErr = err

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, maxRetries, err)
		time.Sleep(waitRetryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", maxRetries, lastErr)
}
