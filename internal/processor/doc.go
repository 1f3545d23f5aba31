// Package processor contains the core logic behind the gurume commands. It
// wires the session store, the translation backend and cache, the romaji
// converter and the shop localizer together and prints their results.
package processor
