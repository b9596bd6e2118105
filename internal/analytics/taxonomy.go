package analytics

// Canonical mail categories.
const (
	CategoryEducation      = "education"
	CategoryAdministrative = "administrative"
	CategoryStudentSupport = "student_support"
	CategoryAcademic       = "academic"
	CategoryOther          = "other"
)

// NoDataDay is reported as the most active day when the period has no documents.
const NoDataDay = "Н/Д"

// KeywordRule maps subject/sender keywords to a category.
type KeywordRule struct {
	Category       string
	SubjectWords   []string
	SenderFragment []string
}

// Taxonomy is the single declarative table set shared by the mail classifier,
// the document aggregator and the collaboration analyzer.
type Taxonomy struct {
	LabelPrefix     string
	LabelCategories map[string]string
	KeywordRules    []KeywordRule // evaluated in order

	DocumentTypes       map[string]string // document category -> type
	DefaultDocumentType string
	DocumentCategories  map[string]string // document category -> display name
	OtherCategoryName   string

	StatusLabels       map[string]string // document status -> project status label
	DefaultStatusLabel string

	Weekdays []string // indexed by time.Weekday, Sunday first
}

// DefaultTaxonomy returns the university tables.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		LabelPrefix: "Category_",
		LabelCategories: map[string]string{
			"education":       CategoryEducation,
			"administrative":  CategoryAdministrative,
			"student_support": CategoryStudentSupport,
			"meetings":        CategoryAcademic,
			"documents":       CategoryAdministrative,
			"other":           CategoryOther,
		},
		KeywordRules: []KeywordRule{
			{
				Category: CategoryEducation,
				SubjectWords: []string{
					"лекци", "семинар", "занят", "курс", "экзамен", "зачет", "зачёт",
					"расписани", "домашн", "lecture", "seminar", "course", "exam", "homework",
				},
			},
			{
				Category: CategoryAdministrative,
				SubjectWords: []string{
					"приказ", "распоряжени", "отчет", "отчёт", "деканат", "ректорат", "служебн",
					"справк", "заявлени", "report", "administration", "policy",
				},
				SenderFragment: []string{"dekanat", "rector", "admin"},
			},
			{
				Category: CategoryStudentSupport,
				SubjectWords: []string{
					"студент", "стипенди", "общежити", "консультаци", "вопрос", "помощь",
					"student", "scholarship", "consultation",
				},
				SenderFragment: []string{"student"},
			},
			{
				Category: CategoryAcademic,
				SubjectWords: []string{
					"конференци", "научн", "статья", "публикаци", "грант", "совещани", "заседани",
					"conference", "research", "paper", "grant", "meeting",
				},
				SenderFragment: []string{".edu", ".ac.", "university", "univer"},
			},
		},
		DocumentTypes: map[string]string{
			"lectures":    "lecture",
			"assignments": "lab",
			"labs":        "lab",
			"syllabi":     "course",
			"exams":       "exam",
		},
		DefaultDocumentType: "course",
		DocumentCategories: map[string]string{
			"lectures":    "Лекции",
			"assignments": "Задания",
			"labs":        "Лабораторные работы",
			"syllabi":     "Рабочие программы",
			"exams":       "Экзаменационные материалы",
		},
		OtherCategoryName: "Другое",
		StatusLabels: map[string]string{
			"draft":       "Черновик",
			"in_progress": "В работе",
			"review":      "На проверке",
			"approved":    "Утверждено",
			"published":   "Опубликовано",
			"archived":    "В архиве",
		},
		DefaultStatusLabel: "В работе",
		Weekdays:           []string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"},
	}
}

// DocumentType maps a document category to its type.
func (t Taxonomy) DocumentType(category string) string {
	if typ, ok := t.DocumentTypes[category]; ok {
		return typ
	}
	return t.DefaultDocumentType
}

// DocumentCategory maps a document category to its display name.
func (t Taxonomy) DocumentCategory(category string) string {
	if name, ok := t.DocumentCategories[category]; ok {
		return name
	}
	return t.OtherCategoryName
}

// StatusLabel maps a document status to a simplified project status.
func (t Taxonomy) StatusLabel(status string) string {
	if label, ok := t.StatusLabels[status]; ok {
		return label
	}
	return t.DefaultStatusLabel
}
