package config

const (
	defaultMusicDir         = "~/Music"
	defaultDataDir          = "~/.local/share/punini"
	defaultLogDir           = "~/.local/share/punini/logs"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 30
	defaultPlaybackSR       = 44100
	defaultPlaybackBufferMs = 100
	defaultPlaybackVolume   = 1.0
	defaultArtProtocol      = "auto"
	defaultArtMaxWidthCells = 40
	defaultUITickMs         = 100
	defaultUIBrowserRatio   = 30
	defaultLyricsOffsetMs   = 0
	defaultLibraryWatch     = false
	defaultRescanOnStart    = true
	defaultFollowSymlinks   = false
	defaultLyricsEnabled    = true
	defaultPreferSidecar    = true
	defaultArtEnabled       = true
)

func defaultExtensions() []string {
	return []string{"flac", "mp3", "wav", "ogg", "m4a"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			MusicDir: defaultMusicDir,
			DataDir:  defaultDataDir,
			LogDir:   defaultLogDir,
		},
		Library: Library{
			Extensions:     defaultExtensions(),
			FollowSymlinks: defaultFollowSymlinks,
			Watch:          defaultLibraryWatch,
			RescanOnStart:  defaultRescanOnStart,
		},
		Playback: Playback{
			SampleRate: defaultPlaybackSR,
			BufferMs:   defaultPlaybackBufferMs,
			Volume:     defaultPlaybackVolume,
		},
		Lyrics: Lyrics{
			Enabled:       defaultLyricsEnabled,
			PreferSidecar: defaultPreferSidecar,
			OffsetMs:      defaultLyricsOffsetMs,
		},
		Art: Art{
			Enabled:       defaultArtEnabled,
			Protocol:      defaultArtProtocol,
			MaxWidthCells: defaultArtMaxWidthCells,
		},
		UI: UI{
			TickMs:       defaultUITickMs,
			BrowserRatio: defaultUIBrowserRatio,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
