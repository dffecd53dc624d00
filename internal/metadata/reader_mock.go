package metadata

type ReaderMock struct {
	MetadataFake func(file string) (Metadata, error)
	CoverFake    func(documentFullPath string, coverMaxWidth int) ([]byte, error)
}

func NewReaderMock() ReaderMock {
	return ReaderMock{
		MetadataFake: func(file string) (Metadata, error) {
			return Metadata{}, nil
		},
		CoverFake: func(documentFullPath string, coverMaxWidth int) ([]byte, error) {
			return []byte{}, nil
		},
	}
}

func (r ReaderMock) Metadata(file string) (Metadata, error) {
	return r.MetadataFake(file)
}

func (r ReaderMock) Cover(documentFullPath string, coverMaxWidth int) ([]byte, error) {
	return r.CoverFake(documentFullPath, coverMaxWidth)
}
