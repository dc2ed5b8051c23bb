// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"strconv"
	"time"

	"github.com/cybrota/avltrace/avl"
	"github.com/patrickmn/go-cache"
)

const (
	// Rendered frames are cheap to rebuild, keep them briefly
	frameCacheExpiration = 5 * time.Minute
	// Clean up expired entries every minute
	frameCacheCleanup = 1 * time.Minute
)

// NewFrameCache creates a cache for rendered tree frames
func NewFrameCache() *cache.Cache {
	return cache.New(frameCacheExpiration, frameCacheCleanup)
}

func CacheFrame(c *cache.Cache, key string, frame string) {
	c.Set(key, frame, frameCacheExpiration)
}

func GetFrame(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}

// TreeRenderer draws trees through the frame cache. Replaying a trace
// redraws the same shape once per step, so most frames are hits.
type TreeRenderer struct {
	styles    *Styles
	cellWidth int
	frames    *cache.Cache
}

func NewTreeRenderer(styles *Styles, cellWidth int, frames *cache.Cache) *TreeRenderer {
	return &TreeRenderer{styles: styles, cellWidth: cellWidth, frames: frames}
}

func (r *TreeRenderer) frameKey(root *avl.Node[int], hl Highlight) string {
	return fingerprint(root) + "|" + hl.key() + "|" + strconv.Itoa(r.cellWidth) + "|" + strconv.FormatBool(r.styles.Plain)
}

func (r *TreeRenderer) Render(root *avl.Node[int], hl Highlight) string {
	key := r.frameKey(root, hl)
	if frame := GetFrame(r.frames, key); frame != "" {
		return frame
	}
	frame := RenderTree(root, hl, r.styles, r.cellWidth)
	CacheFrame(r.frames, key, frame)
	return frame
}
