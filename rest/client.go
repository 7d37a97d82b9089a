// Copyright 2026 The Unit2srv Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use file except in compliance with the License.
// You may obtain a copy of the license at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/context"
)

type Client struct {
	user      string // HTTP Basic-Auth
	pass      string
	base      string // URI to root of tree on server
	auth      bool
	client    *http.Client
	transport *http.Transport
}

func (c *Client) SetAuth(user string, pass string) {
	c.user = user
	c.pass = pass
	c.auth = true
}

// do issues the request, decoding a JSON reply into v.  Replies other
// than 200 are returned as an *Error, using the server's message if it
// sent one.
func (c *Client) do(ctx context.Context, req *http.Request, v interface{}) error {
	if c.auth {
		req.SetBasicAuth(c.user, c.pass)
	}
	res, e := c.client.Do(req.WithContext(ctx))
	if e != nil {
		return e
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		re := &Error{}
		if e := json.NewDecoder(res.Body).Decode(re); e != nil || re.Message == "" {
			re.Message = res.Status
		}
		re.Code = res.StatusCode
		return re
	}
	return json.NewDecoder(res.Body).Decode(v)
}

// Keys returns the unit keys the server knows how to convert.
func (c *Client) Keys(ctx context.Context) ([]string, error) {
	req, e := http.NewRequest("GET", c.base+"/keys", nil)
	if e != nil {
		return nil, e
	}
	var keys []string
	if e := c.do(ctx, req, &keys); e != nil {
		return nil, e
	}
	return keys, nil
}

// Convert sends the unit file read from unit to the server.  The target
// names the resulting dinit service, which alias services refer to.
func (c *Client) Convert(ctx context.Context, target string, unit io.Reader) (*ConvertResult, error) {
	u := c.base + "/convert"
	if target != "" {
		u += "?target=" + url.QueryEscape(target)
	}
	req, e := http.NewRequest("POST", u, unit)
	if e != nil {
		return nil, e
	}
	req.Header.Set("Content-Type", mimeText)
	res := &ConvertResult{}
	if e := c.do(ctx, req, res); e != nil {
		return nil, e
	}
	return res, nil
}

// NewClient returns a Client handle.  The transport maybe nil to use
// a default transport, but it may also be adjusted to support additional
// options such as TLS.  baseURI is the base URL to use.
func NewClient(t *http.Transport, baseURI string) *Client {
	if t == nil {
		t = &http.Transport{}
	}
	c := &Client{
		transport: t,
		base:      strings.TrimRight(baseURI, "/"),
		client:    &http.Client{Transport: t},
	}
	return c
}
