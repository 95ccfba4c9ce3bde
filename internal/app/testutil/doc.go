// Package testutil provides mocks, fixtures and store helpers shared by the
// audio-review tests.
//
// Store helpers (db_helpers.go):
//   - SetupTestStore: an initialized in-memory SQLite store, or a postgres
//     store when POSTGRES_TEST_URL is set
//   - SeedTranscriptions: inserts fixture records through the store
//
// Mocks (mock_services.go, mock_transcription_dao.go, mock_audio_source.go)
// are testify mocks bound to the calling test.
//
// Fixtures (fixtures.go) describe the canonical a.wav/b.wav review session.
//
//	func TestSomething(t *testing.T) {
//	    store := testutil.SetupTestStore(t)
//	    testutil.SeedTranscriptions(t, store, testutil.SampleHistory()...)
//	}
package testutil
