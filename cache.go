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
	"time"

	"github.com/patrickmn/go-cache"
)

// Clean up expired renders every 5 minutes
const renderCacheCleanup = 5 * time.Minute

// NewRenderCache creates a cache for rendered trees whose entries live for ttl
func NewRenderCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, renderCacheCleanup)
}

func CacheRender(c *cache.Cache, key string, text string) {
	// Set instead of Add, a newer render of the same key simply replaces the old one
	c.Set(key, text, cache.DefaultExpiration)
}

func GetRender(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}
