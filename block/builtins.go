package block

// Builtins returns the descriptors of every kind defined in this package
func Builtins() []Descriptor {
	return []Descriptor{
		TextDescriptor,
		ImageDescriptor,
		VideoDescriptor,
		AudioDescriptor,
		DownloadDescriptor,
		QuoteDescriptor,
		GlossaryDescriptor,
		SupplementDescriptor,
	}
}
