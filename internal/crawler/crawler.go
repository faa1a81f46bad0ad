// Package crawler harvests marketing copy from a live site with a headless
// browser so it can seed a workspace knowledge base.
package crawler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// Options configures the crawler behavior
type Options struct {
	Width      int
	Height     int
	Timeout    time.Duration
	ProfileDir string // Chrome/Chromium profile directory for authenticated sessions
}

// Crawl loads url in a headless browser and extracts its copy.
func Crawl(ctx context.Context, url string, opts Options) (*Snapshot, error) {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Width == 0 {
		opts.Width = 1280
	}
	if opts.Height == 0 {
		opts.Height = 800
	}

	path, _ := launcher.LookPath()
	l := launcher.New().Bin(path).Headless(true)
	if opts.ProfileDir != "" {
		l = l.UserDataDir(opts.ProfileDir)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer browser.Close()

	var snap *Snapshot
	err = rod.Try(func() {
		page := browser.Timeout(opts.Timeout).MustPage(url)
		page.MustSetViewport(opts.Width, opts.Height, 1, false)
		page.MustWaitLoad()

		// Don't hang on persistent connections (WebSockets, polling, etc.)
		page.Timeout(5*time.Second).WaitRequestIdle(500*time.Millisecond, nil, nil, nil)()

		isSPA := detectSPA(page)
		if isSPA {
			waitForContent(page, 5*time.Second)
		}

		snap = extractCopy(page)
		snap.URL = url
		snap.IsSPA = isSPA
		snap.Navigation = extractNavigation(page)
	})
	if err != nil {
		return nil, fmt.Errorf("crawl %s: %w", url, err)
	}
	return snap, nil
}

// waitForContent polls until the page renders a heading or timeout
func waitForContent(page *rod.Page, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		count := page.MustEval(`() => document.querySelectorAll('h1, h2, p').length`).Int()
		if count > 0 {
			// Give hydration a moment to finish
			time.Sleep(300 * time.Millisecond)
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// detectSPA checks if the page is a Single Page Application
func detectSPA(page *rod.Page) bool {
	result := page.MustEval(`() => {
		// React
		if (window.__REACT_DEVTOOLS_GLOBAL_HOOK__ || document.querySelector('[data-reactroot]') || document.querySelector('#__next')) return true;
		// Vue
		if (window.__VUE__ || document.querySelector('[data-v-]')) return true;
		// Angular
		if (window.ng || document.querySelector('[ng-version]') || document.querySelector('app-root')) return true;
		// Svelte
		if (document.querySelector('[class*="svelte-"]')) return true;
		return false;
	}`)
	return result.Bool()
}

// extractCopy reads the headline, subheadings, quotes and calls to action.
func extractCopy(page *rod.Page) *Snapshot {
	result := page.MustEval(`() => {
		const text = el => (el && (el.textContent || '').replace(/\s+/g, ' ').trim()) || '';
		const visible = el => !!el.offsetParent;
		const out = { title: document.title, blocks: [], quotes: [], ctas: [] };

		const meta = document.querySelector('meta[name="description"], meta[property="og:description"]');
		out.description = meta ? (meta.getAttribute('content') || '').trim() : '';

		const h1 = Array.from(document.querySelectorAll('h1')).find(visible);
		out.headline = text(h1);
		if (h1) {
			let sib = h1.nextElementSibling;
			while (sib && !/^(P|H2|DIV)$/.test(sib.tagName)) sib = sib.nextElementSibling;
			out.subheadline = sib && sib.tagName !== 'H2' ? text(sib).slice(0, 200) : '';
		}

		document.querySelectorAll('main h2, main h3, section h2, section h3, body > div h2, body > div h3').forEach(h => {
			if (!visible(h)) return;
			let p = h.nextElementSibling;
			while (p && p.tagName !== 'P' && !/^H[1-3]$/.test(p.tagName)) p = p.nextElementSibling;
			const body = p && p.tagName === 'P' ? text(p) : '';
			if (text(h) && body) out.blocks.push({ heading: text(h).slice(0, 120), text: body.slice(0, 500) });
		});

		document.querySelectorAll('blockquote').forEach(q => {
			if (!visible(q)) return;
			const cite = q.querySelector('cite, footer') || q.nextElementSibling;
			const author = cite && cite.tagName !== 'BLOCKQUOTE' ? text(cite).slice(0, 80) : '';
			const body = text(q.querySelector('p') || q);
			if (body) out.quotes.push({ text: body.slice(0, 400), author: author });
		});

		const seen = new Set();
		document.querySelectorAll('a[class*="btn"], a[class*="button"], a[role="button"], button').forEach(el => {
			if (!visible(el)) return;
			const label = text(el).slice(0, 40);
			if (!label || seen.has(label) || el.closest('form')) return;
			seen.add(label);
			out.ctas.push(label);
		});
		return out;
	}`)

	s := &Snapshot{
		Title:       result.Get("title").String(),
		Description: result.Get("description").String(),
		Headline:    result.Get("headline").String(),
		Subheadline: result.Get("subheadline").String(),
	}
	for _, v := range result.Get("blocks").Arr() {
		s.Blocks = append(s.Blocks, Block{Heading: v.Get("heading").String(), Text: v.Get("text").String()})
	}
	for _, v := range result.Get("quotes").Arr() {
		s.Quotes = append(s.Quotes, Quote{Text: v.Get("text").String(), Author: v.Get("author").String()})
	}
	for _, v := range result.Get("ctas").Arr() {
		s.CTAs = append(s.CTAs, v.String())
	}
	return s
}

// extractNavigation finds navigation links
func extractNavigation(page *rod.Page) []NavItem {
	result := page.MustEval(`() => {
		const navItems = [];
		const seen = new Set();

		document.querySelectorAll('nav a, header a, [role="navigation"] a').forEach(el => {
			if (!el.offsetParent) return;
			const href = el.getAttribute('href');
			if (!href || href === '#' || href.startsWith('javascript:')) return;
			if (seen.has(href)) return;
			seen.add(href);
			navItems.push({ text: (el.textContent || '').trim().slice(0, 30), href: href });
		});

		return navItems;
	}`)

	var navItems []NavItem
	for _, v := range result.Arr() {
		navItems = append(navItems, NavItem{
			Text: v.Get("text").String(),
			Href: v.Get("href").String(),
		})
	}
	return navItems
}
