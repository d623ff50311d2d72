// Package templates renders the browser UI.
package templates

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Index returns the single-page controller UI with the configured genre
// allow-list injected. All state lives in the browser; every mutation goes
// through the JSON API.
func Index(genreAllowList []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		genres, err := json.Marshal(genreAllowList)
		if err != nil {
			return err
		}
		page := strings.Replace(indexHTML, "__GENRE_ALLOWLIST__", string(genres), 1)
		_, err = io.WriteString(w, page)
		return err
	})
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>mixcrate</title>
<style>
  body { font-family: system-ui, sans-serif; margin: 0; display: flex; height: 100vh; }
  #sidebar { width: 34%; overflow-y: auto; border-right: 1px solid #ccc; padding: 1rem; }
  #editor { flex: 1; padding: 1.5rem; }
  h2 { font-size: 1rem; margin: 1rem 0 .25rem; }
  ul { list-style: none; padding: 0; margin: 0; }
  li { padding: .3rem .4rem; cursor: pointer; border-radius: 4px; overflow-wrap: anywhere; }
  li:hover { background: #eef; }
  li.selected { background: #dde4ff; }
  label { display: block; margin-top: .75rem; font-weight: 600; }
  input[type=text], input[type=number] { width: 100%; max-width: 28rem; padding: .35rem; }
  .genres label { display: inline-block; margin-right: 1rem; font-weight: 400; }
  .row { margin-top: 1rem; }
  button { padding: .4rem .9rem; margin-right: .5rem; }
  #tap { min-width: 7rem; }
  audio { display: block; margin-top: 1rem; width: 100%; max-width: 28rem; }
</style>
</head>
<body>
<div id="sidebar">
  <input id="search" type="text" placeholder="filter..."/>
  <h2>Input</h2><ul id="input-list"></ul>
  <h2>Output</h2><ul id="output-list"></ul>
</div>
<div id="editor">
  <div id="no-selection">Select a track.</div>
  <form id="tag-form" style="display:none" onsubmit="return false">
    <label>Title <input type="text" id="title"/></label>
    <label>Artist <input type="text" id="artist"/></label>
    <div class="genres" id="genres"></div>
    <label>BPM
      <input type="number" id="bpm" min="0"/>
      <button id="tap" type="button">Tap</button>
    </label>
    <label>Structure <input type="text" id="structure"/></label>
    <label>Quadre <input type="text" id="quadre"/></label>
    <audio id="player" controls preload="none"></audio>
    <div class="row">
      <button id="save" type="button">Save to output</button>
      <button id="move" type="button">Move to input</button>
      <button id="del" type="button">Delete</button>
    </div>
  </form>
</div>
<script>
const state = {
  files: { inputFiles: [], outputFiles: [] },
  selected: null,            // { root, path }
  filter: '',
  taps: [],                  // tap timestamps in ms, oldest first
  allowList: __GENRE_ALLOWLIST__,
};

const $ = (id) => document.getElementById(id);

async function api(path, opts) {
  const res = await fetch(path, opts);
  const body = await res.json().catch(() => ({}));
  if (!res.ok) throw new Error(body.error || res.statusText);
  return body;
}

async function refreshFiles() {
  state.files = await api('/api/files');
  renderLists();
}

function matchesFilter(f) {
  return f.path.toLowerCase().includes(state.filter.toLowerCase());
}

function renderLists() {
  for (const [root, listId] of [['input', 'input-list'], ['output', 'output-list']]) {
    const ul = $(listId);
    ul.textContent = '';
    const files = root === 'input' ? state.files.inputFiles : state.files.outputFiles;
    for (const f of files.filter(matchesFilter)) {
      const li = document.createElement('li');
      li.textContent = f.path;
      if (state.selected && state.selected.root === root && state.selected.path === f.path) {
        li.classList.add('selected');
      }
      li.onclick = () => select(root, f.path);
      ul.appendChild(li);
    }
  }
}

function renderGenres(selected) {
  const box = $('genres');
  box.textContent = '';
  for (const g of state.allowList) {
    const label = document.createElement('label');
    const cb = document.createElement('input');
    cb.type = 'checkbox';
    cb.value = g;
    cb.checked = selected.includes(g);
    label.appendChild(cb);
    label.appendChild(document.createTextNode(' ' + g));
    box.appendChild(label);
  }
}

async function select(root, path) {
  state.selected = { root, path };
  state.taps = [];
  const encoded = path.split('/').map(encodeURIComponent).join('/');
  const tags = await api('/api/tags/' + root + '/' + encoded);
  $('title').value = tags.title;
  $('artist').value = tags.artist;
  $('bpm').value = tags.bpm || '';
  $('structure').value = tags.structure;
  $('quadre').value = tags.quadre;
  renderGenres(tags.genres || []);
  $('player').src = '/api/play/' + root + '/' + encoded;
  $('no-selection').style.display = 'none';
  $('tag-form').style.display = 'block';
  renderLists();
}

function formTags() {
  return {
    title: $('title').value,
    artist: $('artist').value,
    genres: [...document.querySelectorAll('#genres input:checked')].map((cb) => cb.value),
    bpm: parseInt($('bpm').value, 10) || 0,
    structure: $('structure').value,
    quadre: $('quadre').value,
  };
}

$('search').oninput = (e) => { state.filter = e.target.value; renderLists(); };

$('tap').onclick = async () => {
  const now = Date.now();
  const last = state.taps[state.taps.length - 1];
  if (last !== undefined && now - last > 2000) state.taps = [];
  state.taps.push(now);
  if (state.taps.length > 128) state.taps.shift();
  const res = await api('/api/bpm/estimate', {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify({ taps: state.taps }),
  });
  if (res.bpm > 0) $('bpm').value = res.bpm;
};

$('save').onclick = async () => {
  if (!state.selected) return;
  try {
    const res = await api('/api/save', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({
        sourceDir: state.selected.root,
        sourcePath: state.selected.path,
        tags: formTags(),
      }),
    });
    state.selected = { root: 'output', path: res.newFile.path };
    await refreshFiles();
  } catch (err) {
    alert(err.message);
  }
};

$('move').onclick = async () => {
  if (!state.selected || state.selected.root !== 'output') return;
  try {
    const res = await api('/api/move-to-input', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ file: { path: state.selected.path } }),
    });
    state.selected = { root: 'input', path: res.newFile.path };
    await refreshFiles();
  } catch (err) {
    alert(err.message);
  }
};

$('del').onclick = async () => {
  if (!state.selected) return;
  if (!confirm('Delete ' + state.selected.path + '?')) return;
  const encoded = state.selected.path.split('/').map(encodeURIComponent).join('/');
  try {
    await api('/api/files/' + state.selected.root + '/' + encoded, { method: 'DELETE' });
    state.selected = null;
    $('tag-form').style.display = 'none';
    $('no-selection').style.display = 'block';
    await refreshFiles();
  } catch (err) {
    alert(err.message);
  }
};

refreshFiles();
</script>
</body>
</html>
`
