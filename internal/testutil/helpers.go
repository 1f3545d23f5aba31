package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}

// ShopJSON is a HotPepper search response with one shop, trimmed to the
// fields the localizer reads.
const ShopJSON = `{
  "results": {
    "api_version": "1.26",
    "results_available": 1,
    "results_returned": "1",
    "results_start": 1,
    "shop": [
      {
        "id": "J000000001",
        "name": "すし匠 銀座",
        "name_kana": "すししょう　ぎんざ",
        "address": "東京都中央区銀座1-2-3",
        "station_name": "銀座",
        "genre": {"code": "G004", "name": "和食", "catch": "江戸前寿司"},
        "budget": {"code": "B005", "name": "7001～10000円", "average": "9000円"},
        "access": "銀座駅から徒歩3分",
        "catch": "旬の鮮魚を堪能",
        "open": "月～土: 17:00～23:00",
        "close": "日",
        "capacity": 24,
        "party_capacity": "",
        "wifi": "あり",
        "card": "利用可",
        "non_smoking": "全面禁煙",
        "child": "お子様連れ歓迎",
        "english": "",
        "other_memo": ""
      }
    ]
  }
}`
