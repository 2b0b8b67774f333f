package site

// selectorTemplate renders the documentation selector: the landing
// grid of available documentation sets plus the upload form.
const selectorTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Documentation — {{.SiteName}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <header class="top-bar">
    <a href="/" class="site-title">{{.SiteName}}</a>
    <nav class="top-nav">
      <a href="/">Documentation</a>
      <a href="/projects">Projects</a>
    </nav>
    <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">◐</button>
  </header>
  <main class="selector">
    <h1>Documentation</h1>
    <div class="doc-grid" id="doc-grid">
      {{range .Entries}}
      <a class="doc-card" href="{{.Href}}">
        {{if .Thumbnail}}<img src="{{.Thumbnail}}" alt="" loading="lazy">{{end}}
        <h2>{{.Title}}</h2>
        <p>{{.Description}}</p>
        <div class="doc-tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</div>
      </a>
      {{end}}
    </div>
    <div class="empty-state" id="empty-state" hidden>
      <p>No documentation available yet.</p>
    </div>
    {{if .EnableUpload}}<section class="upload-box">
      <h2>Preview your own</h2>
      <p>Upload a documentation JSON file to preview it in the viewer.</p>
      <input type="file" id="upload-input" accept="application/json">
      <p class="upload-error" id="upload-error" hidden></p>
    </section>{{end}}
  </main>
  <script src="{{.BasePath}}app.js"></script>
</body>
</html>`

// documentTemplate renders the viewer: sidebar table of contents plus
// the rendered article body.
const documentTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — {{.SiteName}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body data-doc-id="{{.DocID}}">
  <header class="top-bar">
    <button class="sidebar-toggle" id="sidebar-toggle" aria-label="Toggle sidebar">☰</button>
    <a href="/" class="site-title">{{.SiteName}}</a>
    <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">◐</button>
  </header>
  <div class="viewer">
    <aside class="sidebar" id="sidebar">
      <div class="sidebar-header">
        <a href="/" class="back-link">← All documentation</a>
        <h2>{{.Title}}</h2>
      </div>
      {{.TOCHTML}}
    </aside>
    <article class="doc-content" id="doc-content">
      {{.Body}}
    </article>
  </div>
  <script src="{{.BasePath}}app.js"></script>
</body>
</html>`

// projectsTemplate renders the projects showcase with the carousel and
// category filter bar. Project data is fetched client-side so the
// local cache and the carousel share one code path.
const projectsTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Projects — {{.SiteName}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <header class="top-bar">
    <a href="/" class="site-title">{{.SiteName}}</a>
    <nav class="top-nav">
      <a href="/">Documentation</a>
      <a href="/projects">Projects</a>
    </nav>
    <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">◐</button>
  </header>
  <main class="projects">
    <h1>Projects</h1>
    <div class="category-filter" id="category-filter"></div>
    <div class="carousel" id="carousel">
      <button class="carousel-prev" id="carousel-prev" aria-label="Previous project">‹</button>
      <div class="carousel-track" id="carousel-track"></div>
      <button class="carousel-next" id="carousel-next" aria-label="Next project">›</button>
    </div>
    <div class="carousel-dots" id="carousel-dots"></div>
  </main>
  <script src="{{.BasePath}}app.js"></script>
</body>
</html>`

// cssContent is the stylesheet shared by every page.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1a1a2e;
  --muted: #6b7280;
  --border: #e5e7eb;
  --accent: #2563eb;
  --card-bg: #f9fafb;
  --code-bg: #f3f4f6;
  --sidebar-w: 280px;
}
[data-theme="dark"] {
  --bg: #0f1117;
  --fg: #e5e7eb;
  --muted: #9ca3af;
  --border: #2d3343;
  --accent: #60a5fa;
  --card-bg: #1a1e2a;
  --code-bg: #161a24;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--fg);
  line-height: 1.6;
}
a { color: var(--accent); text-decoration: none; }
.top-bar {
  display: flex;
  align-items: center;
  gap: 1rem;
  padding: 0.75rem 1.5rem;
  border-bottom: 1px solid var(--border);
  position: sticky;
  top: 0;
  background: var(--bg);
  z-index: 10;
}
.site-title { font-weight: 700; color: var(--fg); margin-right: auto; }
.top-nav { display: flex; gap: 1rem; }
.theme-toggle, .sidebar-toggle, .carousel-prev, .carousel-next {
  background: none;
  border: 1px solid var(--border);
  border-radius: 6px;
  color: var(--fg);
  cursor: pointer;
  padding: 0.3rem 0.6rem;
  font-size: 1rem;
}
.selector, .projects { max-width: 960px; margin: 0 auto; padding: 2rem 1.5rem; }
.doc-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(260px, 1fr));
  gap: 1rem;
}
.doc-card {
  display: block;
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 1rem;
  background: var(--card-bg);
  color: var(--fg);
}
.doc-card:hover { border-color: var(--accent); }
.doc-card img { width: 100%; border-radius: 6px; }
.doc-card p { color: var(--muted); font-size: 0.9rem; }
.tag {
  display: inline-block;
  font-size: 0.75rem;
  background: var(--code-bg);
  border-radius: 4px;
  padding: 0.1rem 0.5rem;
  margin-right: 0.3rem;
}
.empty-state { text-align: center; color: var(--muted); padding: 3rem 0; }
.upload-box {
  margin-top: 3rem;
  border: 1px dashed var(--border);
  border-radius: 8px;
  padding: 1.5rem;
}
.upload-error { color: #dc2626; }
.viewer { display: flex; min-height: calc(100vh - 53px); }
.sidebar {
  width: var(--sidebar-w);
  flex-shrink: 0;
  border-right: 1px solid var(--border);
  padding: 1rem;
  overflow-y: auto;
  position: sticky;
  top: 53px;
  height: calc(100vh - 53px);
}
body.sidebar-collapsed .sidebar { display: none; }
.back-link { font-size: 0.85rem; color: var(--muted); }
.doc-toc ul { list-style: none; padding-left: 0; }
.doc-toc a { display: block; padding: 0.25rem 0.5rem; border-radius: 4px; color: var(--fg); }
.toc-subsection a { padding-left: 1.5rem; font-size: 0.9rem; color: var(--muted); }
.toc-entry.active > a { background: var(--code-bg); color: var(--accent); }
.doc-content { flex: 1; max-width: 820px; padding: 2rem 2.5rem; }
.doc-section { margin-bottom: 2.5rem; }
.section-title { border-bottom: 1px solid var(--border); padding-bottom: 0.4rem; }
.doc-subsection { margin: 1.5rem 0 1.5rem 0.5rem; padding-left: 1rem; border-left: 2px solid var(--border); }
.doc-image-container { margin: 1rem 0; text-align: center; }
.doc-image-container img { max-width: 100%; border-radius: 6px; }
.doc-image-container figcaption { color: var(--muted); font-size: 0.85rem; }
pre {
  position: relative;
  background: var(--code-bg) !important;
  border-radius: 8px;
  padding: 1rem;
  overflow-x: auto;
}
.copy-code-button {
  position: absolute;
  top: 0.5rem;
  right: 0.5rem;
  font-size: 0.75rem;
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 4px;
  color: var(--muted);
  cursor: pointer;
  padding: 0.15rem 0.5rem;
}
.faq-item { border: 1px solid var(--border); border-radius: 8px; padding: 0.75rem 1rem; margin: 0.75rem 0; }
.faq-question { margin: 0 0 0.5rem 0; }
.category-filter { display: flex; gap: 0.5rem; flex-wrap: wrap; margin-bottom: 1.5rem; }
.category-filter button {
  background: var(--card-bg);
  border: 1px solid var(--border);
  border-radius: 999px;
  color: var(--fg);
  cursor: pointer;
  padding: 0.25rem 0.9rem;
}
.category-filter button.active { border-color: var(--accent); color: var(--accent); }
.carousel { display: flex; align-items: center; gap: 1rem; }
.carousel-track { flex: 1; overflow: hidden; }
.project-card {
  border: 1px solid var(--border);
  border-radius: 8px;
  background: var(--card-bg);
  padding: 1.5rem;
}
.project-card img { max-width: 100%; border-radius: 6px; }
.carousel-dots { text-align: center; margin-top: 1rem; }
.carousel-dots button {
  width: 10px; height: 10px;
  border-radius: 50%;
  border: none;
  background: var(--border);
  margin: 0 4px;
  cursor: pointer;
  padding: 0;
}
.carousel-dots button.active { background: var(--accent); }
@media (max-width: 768px) {
  .sidebar { position: fixed; left: 0; background: var(--bg); z-index: 20; }
  .doc-content { padding: 1.5rem 1rem; }
}`

// jsContent is the client controller: theme and sidebar preferences,
// copy-to-clipboard, table of contents scroll sync, the selector empty
// state, uploads, and the projects carousel.
const jsContent = `(function() {
  'use strict';

  var MANUAL_NAV_MS = 100;
  var INITIAL_STATE_MS = 300;
  var SCROLL_SETTLE_MS = 500;
  var COPY_FEEDBACK_MS = 2000;
  var EMPTY_STATE_MS = 3000;
  var PROJECT_CACHE_MS = 60 * 60 * 1000;

  // ---- theme ----
  var themeToggle = document.getElementById('theme-toggle');
  var stored = localStorage.getItem('theme');
  if (stored === 'light' || stored === 'dark') {
    document.documentElement.setAttribute('data-theme', stored);
  }
  if (themeToggle) {
    themeToggle.addEventListener('click', function() {
      var current = document.documentElement.getAttribute('data-theme');
      var next = current === 'dark' ? 'light' : 'dark';
      document.documentElement.setAttribute('data-theme', next);
      localStorage.setItem('theme', next);
    });
  }

  // ---- sidebar ----
  var sidebarToggle = document.getElementById('sidebar-toggle');
  if (localStorage.getItem('sidebarCollapsed') === 'true') {
    document.body.classList.add('sidebar-collapsed');
  }
  if (sidebarToggle) {
    sidebarToggle.addEventListener('click', function() {
      var collapsed = document.body.classList.toggle('sidebar-collapsed');
      localStorage.setItem('sidebarCollapsed', String(collapsed));
    });
  }

  // ---- copy to clipboard ----
  function copyText(text) {
    if (navigator.clipboard && navigator.clipboard.writeText) {
      return navigator.clipboard.writeText(text);
    }
    return new Promise(function(resolve, reject) {
      var ta = document.createElement('textarea');
      ta.value = text;
      ta.style.position = 'fixed';
      ta.style.opacity = '0';
      document.body.appendChild(ta);
      ta.select();
      try {
        document.execCommand('copy') ? resolve() : reject(new Error('copy failed'));
      } catch (err) {
        reject(err);
      } finally {
        document.body.removeChild(ta);
      }
    });
  }

  document.addEventListener('click', function(e) {
    var btn = e.target.closest('.copy-code-button');
    if (!btn) return;
    var pre = btn.closest('pre');
    var code = pre ? pre.querySelector('code') : null;
    if (!code) return;
    copyText(code.textContent).then(function() {
      btn.textContent = 'Copied!';
    }).catch(function() {
      btn.textContent = 'Failed';
    }).then(function() {
      setTimeout(function() { btn.textContent = 'Copy'; }, COPY_FEEDBACK_MS);
    });
  });

  // ---- documentation viewer: TOC sync and history ----
  var docContent = document.getElementById('doc-content');
  if (docContent) {
    var docId = document.body.getAttribute('data-doc-id');
    var tocLinks = Array.prototype.slice.call(document.querySelectorAll('[data-section-id]'));
    var manualNavUntil = 0;
    var scrollTimer = null;
    var initialized = false;

    function setActive(id, replace) {
      tocLinks.forEach(function(link) {
        link.parentElement.classList.toggle('active',
          link.getAttribute('data-section-id') === id);
      });
      var state = { docId: docId, sectionId: id };
      var url = location.pathname + location.search.replace(/#.*$/, '') + '#' + id;
      if (replace) {
        history.replaceState(state, '', url);
      } else {
        history.pushState(state, '', url);
      }
    }

    tocLinks.forEach(function(link) {
      link.addEventListener('click', function(e) {
        e.preventDefault();
        var id = link.getAttribute('data-section-id');
        var el = document.getElementById(id);
        if (!el) return;
        manualNavUntil = Date.now() + MANUAL_NAV_MS;
        el.scrollIntoView({ behavior: 'smooth' });
        setActive(id, false);
      });
    });

    // The last section or subsection whose top has crossed the
    // viewport midpoint while staying substantially visible wins.
    function computeActive() {
      var viewport = window.innerHeight;
      var mid = viewport / 2;
      var active = null;
      var sections = document.querySelectorAll('.doc-section');
      sections.forEach(function(sec) {
        var rect = sec.getBoundingClientRect();
        var visible = Math.max(0, Math.min(rect.bottom, viewport) - Math.max(rect.top, 0));
        if ((visible > rect.height * 0.3 || visible > 200) && rect.top < mid) {
          active = sec;
        }
      });
      if (!active) return null;
      var target = active.id;
      active.querySelectorAll('.doc-subsection').forEach(function(sub) {
        var top = sub.getBoundingClientRect().top;
        if (top >= 0 && top < mid) target = sub.id;
      });
      return target;
    }

    function onScrollSettled() {
      if (Date.now() < manualNavUntil || !initialized) return;
      var target = computeActive();
      if (target) setActive(target, true);
    }

    window.addEventListener('scroll', function() {
      clearTimeout(scrollTimer);
      scrollTimer = setTimeout(onScrollSettled, SCROLL_SETTLE_MS);
    }, { passive: true });

    window.addEventListener('popstate', function(e) {
      if (!e.state || !e.state.sectionId) return;
      var el = document.getElementById(e.state.sectionId);
      if (el) {
        manualNavUntil = Date.now() + MANUAL_NAV_MS;
        el.scrollIntoView();
      }
    });

    // Record the initial location once the layout settles. Replace,
    // not push, so back still leaves the viewer.
    setTimeout(function() {
      var initial = location.hash ? location.hash.slice(1) : null;
      if (initial) {
        var el = document.getElementById(initial);
        if (el) el.scrollIntoView();
      } else {
        var first = document.querySelector('.doc-section');
        initial = first ? first.id : null;
      }
      if (initial) setActive(initial, true);
      initialized = true;
    }, INITIAL_STATE_MS);
  }

  // ---- selector: empty state and uploads ----
  var docGrid = document.getElementById('doc-grid');
  if (docGrid) {
    setTimeout(function() {
      if (docGrid.children.length === 0) {
        document.getElementById('empty-state').hidden = false;
      }
    }, EMPTY_STATE_MS);

    var uploadInput = document.getElementById('upload-input');
    var uploadError = document.getElementById('upload-error');
    if (uploadInput) {
      uploadInput.addEventListener('change', function() {
        var file = uploadInput.files[0];
        if (!file) return;
        uploadError.hidden = true;
        file.text().then(function(text) {
          return fetch('/api/uploads', { method: 'POST', body: text });
        }).then(function(resp) {
          if (!resp.ok) {
            return resp.text().then(function(msg) { throw new Error(msg); });
          }
          return resp.json();
        }).then(function(out) {
          window.location.href = out.url;
        }).catch(function(err) {
          uploadError.textContent = err.message || 'Upload failed';
          uploadError.hidden = false;
        });
      });
    }
  }

  // ---- projects carousel ----
  var track = document.getElementById('carousel-track');
  if (track) {
    var allProjects = [];
    var visible = [];
    var activeIndex = 0;

    function loadProjects() {
      var cached = localStorage.getItem('cached_projects_data');
      if (cached) {
        try {
          var entry = JSON.parse(cached);
          if (Date.now() - entry.timestamp < PROJECT_CACHE_MS) {
            return Promise.resolve(entry.data);
          }
        } catch (err) { /* fall through to fetch */ }
      }
      return fetch('/api/projects').then(function(resp) {
        return resp.json();
      }).then(function(data) {
        localStorage.setItem('cached_projects_data',
          JSON.stringify({ data: data, timestamp: Date.now() }));
        return data;
      });
    }

    function renderCard(p) {
      var techs = (p.technologies || []).map(function(t) {
        return '<span class="tag">' + t + '</span>';
      }).join('');
      var links = '';
      if (p.liveUrl) links += '<a href="' + p.liveUrl + '">Live</a> ';
      if (p.githubUrl) links += '<a href="' + p.githubUrl + '">Source</a>';
      return '<div class="project-card">' +
        (p.image ? '<img src="' + p.image + '" alt="" loading="lazy">' : '') +
        '<h2>' + p.title + '</h2>' +
        '<p>' + (p.description || '') + '</p>' +
        '<div>' + techs + '</div><div>' + links + '</div></div>';
    }

    function render() {
      if (visible.length === 0) {
        track.innerHTML = '<p class="empty-state">No projects in this category.</p>';
        document.getElementById('carousel-dots').innerHTML = '';
        return;
      }
      track.innerHTML = renderCard(visible[activeIndex]);
      var dots = visible.map(function(_, i) {
        return '<button' + (i === activeIndex ? ' class="active"' : '') +
          ' data-index="' + i + '" aria-label="Project ' + (i + 1) + '"></button>';
      }).join('');
      document.getElementById('carousel-dots').innerHTML = dots;
    }

    function setCategory(category) {
      visible = category ? allProjects.filter(function(p) {
        return p.category === category;
      }) : allProjects.slice();
      activeIndex = 0;
      for (var i = 0; i < visible.length; i++) {
        if (visible[i].featured) { activeIndex = i; break; }
      }
      var buttons = document.querySelectorAll('.category-filter button');
      buttons.forEach(function(b) {
        b.classList.toggle('active', b.getAttribute('data-category') === (category || ''));
      });
      render();
    }

    loadProjects().then(function(data) {
      allProjects = data || [];
      var categories = [];
      allProjects.forEach(function(p) {
        if (p.category && categories.indexOf(p.category) === -1) categories.push(p.category);
      });
      categories.sort();
      var bar = document.getElementById('category-filter');
      bar.innerHTML = '<button class="active" data-category="">All</button>' +
        categories.map(function(c) {
          return '<button data-category="' + c + '">' + c + '</button>';
        }).join('');
      bar.addEventListener('click', function(e) {
        if (e.target.tagName === 'BUTTON') {
          setCategory(e.target.getAttribute('data-category') || '');
        }
      });
      setCategory('');
      document.dispatchEvent(new CustomEvent('projectsDataLoaded', {
        detail: { count: allProjects.length }
      }));
    }).catch(function() {
      visible = [];
      render();
    });

    document.getElementById('carousel-next').addEventListener('click', function() {
      if (visible.length === 0) return;
      activeIndex = (activeIndex + 1) % visible.length;
      render();
    });
    document.getElementById('carousel-prev').addEventListener('click', function() {
      if (visible.length === 0) return;
      activeIndex = (activeIndex - 1 + visible.length) % visible.length;
      render();
    });
    document.getElementById('carousel-dots').addEventListener('click', function(e) {
      var idx = e.target.getAttribute('data-index');
      if (idx !== null) {
        activeIndex = parseInt(idx, 10);
        render();
      }
    });
  }
})();`
