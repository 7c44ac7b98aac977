// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"log"
	"time"
)

// poller is the part of *bma253.Dev the polling loop drives.
type poller interface {
	Update()
	Failed() bool
	Warning() bool
}

// poll calls p.Update every interval until ctx is done. A failed device is
// never updated. Warning transitions are logged.
func poll(ctx context.Context, p poller, interval time.Duration) {
	if p.Failed() {
		log.Printf("bma253: device failed setup, not polling")
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	warned := false
	for {
		p.Update()
		if w := p.Warning(); w != warned {
			if w {
				log.Printf("bma253: read failed, warning set")
			} else {
				log.Printf("bma253: warning cleared")
			}
			warned = w
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
		}
	}
}
