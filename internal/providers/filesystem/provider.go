package filesystem

import (
	"github.com/GriffinCanCode/filemanager/internal/logging"
	"github.com/GriffinCanCode/filemanager/internal/shared/utils"
)

// Options configures the filesystem provider
type Options struct {
	Locale        string
	BufferSize    int
	HashAlgorithm string
	Compression   string
}

// Provider groups the filesystem operation sets
type Provider struct {
	Directory  *DirectoryOps
	Basic      *BasicOps
	Operations *OperationsOps
	Archives   *ArchivesOps
}

// NewProvider creates a filesystem provider
func NewProvider(opts Options, logger *logging.Logger) (*Provider, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if opts.Locale == "" {
		opts.Locale = "en"
	}
	if opts.HashAlgorithm == "" {
		opts.HashAlgorithm = string(utils.SHA256)
	}
	if opts.Compression == "" {
		opts.Compression = "brotli"
	}

	ops := &FilesystemOps{
		Logger:     logger.Named("filesystem"),
		BufferSize: opts.BufferSize,
	}

	directory, err := NewDirectoryOps(ops, opts.Locale)
	if err != nil {
		return nil, err
	}

	hasher, err := utils.NewHasher(utils.HashAlgorithm(opts.HashAlgorithm))
	if err != nil {
		return nil, err
	}

	codec, err := CodecByName(opts.Compression)
	if err != nil {
		return nil, err
	}

	return &Provider{
		Directory:  directory,
		Basic:      &BasicOps{FilesystemOps: ops},
		Operations: &OperationsOps{FilesystemOps: ops, Hasher: hasher},
		Archives:   &ArchivesOps{FilesystemOps: ops, Codec: codec},
	}, nil
}
