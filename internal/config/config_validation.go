package config

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.Address == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Session.FilePath == "" {
		return ErrInvalidSessionConfigs
	}

	if cfg.Uploads.MaxStagedImages <= 0 || cfg.Uploads.InterUploadPause <= 0 {
		return ErrInvalidUploadConfigs
	}

	return nil
}
