package questionbank

// seedQuestions is the static bank content, keyed topic → difficulty. Topic,
// difficulty and ID fields are filled in by New.
var seedQuestions = map[string]map[string][]Question{
	"Variables and Data Types": {
		"easy": {
			{Question: "Which is a valid Python variable name?", Options: map[string]string{"A": "2name", "B": "my_var", "C": "my-var", "D": "class"}, CorrectAnswer: "B", Explanation: "Variable names can have letters, numbers, underscores but can't start with a number or be reserved words."},
			{Question: "What type is x = 5.5?", Options: map[string]string{"A": "int", "B": "float", "C": "str", "D": "double"}, CorrectAnswer: "B", Explanation: "Decimal numbers are float type in Python."},
			{Question: "What is type(True)?", Options: map[string]string{"A": "int", "B": "str", "C": "bool", "D": "bit"}, CorrectAnswer: "C", Explanation: "True and False are boolean (bool) type."},
			{Question: "What does None mean?", Options: map[string]string{"A": "Zero", "B": "Empty", "C": "No value", "D": "Error"}, CorrectAnswer: "C", Explanation: "None represents absence of value."},
			{Question: "What is type([1,2,3])?", Options: map[string]string{"A": "array", "B": "tuple", "C": "list", "D": "set"}, CorrectAnswer: "C", Explanation: "Square brackets create a list."},
		},
		"medium": {
			{Question: "What happens with '5' + 5?", Options: map[string]string{"A": "10", "B": "'55'", "C": "TypeError", "D": "55"}, CorrectAnswer: "C", Explanation: "Cannot concatenate str and int directly."},
			{Question: "What is bool('')?", Options: map[string]string{"A": "True", "B": "False", "C": "Error", "D": "None"}, CorrectAnswer: "B", Explanation: "Empty string is considered False."},
			{Question: "Convert '42' to integer?", Options: map[string]string{"A": "integer('42')", "B": "int('42')", "C": "num('42')", "D": "parse('42')"}, CorrectAnswer: "B", Explanation: "int() converts to integer."},
			{Question: "Mutable data type?", Options: map[string]string{"A": "str", "B": "tuple", "C": "list", "D": "int"}, CorrectAnswer: "C", Explanation: "Lists can be changed after creation."},
		},
		"hard": {
			{Question: "What is 0.1 + 0.2 == 0.3?", Options: map[string]string{"A": "True", "B": "False", "C": "Error", "D": "0.3"}, CorrectAnswer: "B", Explanation: "Floating point precision causes this to be False."},
			{Question: "Difference: is vs ==?", Options: map[string]string{"A": "Same", "B": "is=identity, ==value", "C": "is=value, ==identity", "D": "Speed only"}, CorrectAnswer: "B", Explanation: "'is' checks identity, '==' checks value equality."},
		},
	},
	"Operators": {
		"easy": {
			{Question: "What is 10 % 3?", Options: map[string]string{"A": "3", "B": "1", "C": "0", "D": "3.33"}, CorrectAnswer: "B", Explanation: "% gives the remainder. 10÷3 = 3 remainder 1."},
			{Question: "What does ** do?", Options: map[string]string{"A": "Multiply", "B": "Power", "C": "Comment", "D": "Pointer"}, CorrectAnswer: "B", Explanation: "** is exponentiation (power)."},
			{Question: "What is 7 // 2?", Options: map[string]string{"A": "3.5", "B": "3", "C": "4", "D": "2"}, CorrectAnswer: "B", Explanation: "// is floor division, gives integer."},
			{Question: "What does += do?", Options: map[string]string{"A": "Add only", "B": "Add and assign", "C": "Compare", "D": "Increment 1"}, CorrectAnswer: "B", Explanation: "x += 5 means x = x + 5."},
		},
		"medium": {
			{Question: "What does 'in' operator check?", Options: map[string]string{"A": "Type", "B": "Membership", "C": "Equality", "D": "Size"}, CorrectAnswer: "B", Explanation: "'in' checks if an element exists in a sequence."},
			{Question: "Result of 'abc' * 2?", Options: map[string]string{"A": "Error", "B": "'abcabc'", "C": "'abc2'", "D": "6"}, CorrectAnswer: "B", Explanation: "* repeats the string."},
			{Question: "5 > 3 and 2 > 4?", Options: map[string]string{"A": "True", "B": "False", "C": "Error", "D": "None"}, CorrectAnswer: "B", Explanation: "'and' needs both True."},
		},
		"hard": {
			{Question: "What is ^ operator?", Options: map[string]string{"A": "Power", "B": "XOR", "C": "AND", "D": "NOT"}, CorrectAnswer: "B", Explanation: "^ is bitwise XOR."},
			{Question: "What is 5 & 3?", Options: map[string]string{"A": "8", "B": "1", "C": "15", "D": "2"}, CorrectAnswer: "B", Explanation: "Bitwise AND: 101 & 011 = 001 = 1."},
		},
	},
	"Control Flow": {
		"easy": {
			{Question: "Keyword for condition?", Options: map[string]string{"A": "when", "B": "if", "C": "check", "D": "test"}, CorrectAnswer: "B", Explanation: "'if' starts a conditional statement."},
			{Question: "What does 'elif' mean?", Options: map[string]string{"A": "end if", "B": "else if", "C": "element if", "D": "error if"}, CorrectAnswer: "B", Explanation: "'elif' is short for 'else if'."},
			{Question: "Equality operator?", Options: map[string]string{"A": "=", "B": "==", "C": "===", "D": "eq"}, CorrectAnswer: "B", Explanation: "== checks equality."},
			{Question: "Not equal operator?", Options: map[string]string{"A": "<>", "B": "!=", "C": "=/=", "D": "ne"}, CorrectAnswer: "B", Explanation: "!= means not equal."},
		},
		"medium": {
			{Question: "What is the ternary operator?", Options: map[string]string{"A": "Three values", "B": "One-line if-else", "C": "Loop", "D": "Function"}, CorrectAnswer: "B", Explanation: "x if condition else y - one line conditional."},
			{Question: "True and False?", Options: map[string]string{"A": "True", "B": "False", "C": "Error", "D": "None"}, CorrectAnswer: "B", Explanation: "'and' returns False if any operand is False."},
		},
		"hard": {
			{Question: "What is short-circuit evaluation?", Options: map[string]string{"A": "Error handling", "B": "Stop when result known", "C": "Fast loop", "D": "Memory save"}, CorrectAnswer: "B", Explanation: "Evaluation stops once the result is determined."},
		},
	},
	"Loops": {
		"easy": {
			{Question: "Loop for fixed iterations?", Options: map[string]string{"A": "while", "B": "for", "C": "do", "D": "repeat"}, CorrectAnswer: "B", Explanation: "'for' loop runs a fixed number of times."},
			{Question: "What does 'break' do?", Options: map[string]string{"A": "Pause", "B": "Exit loop", "C": "Skip", "D": "Restart"}, CorrectAnswer: "B", Explanation: "'break' exits the loop immediately."},
			{Question: "What does 'continue' do?", Options: map[string]string{"A": "Exit", "B": "Skip to next iteration", "C": "Pause", "D": "Restart"}, CorrectAnswer: "B", Explanation: "'continue' skips the rest of the current iteration."},
			{Question: "What is range(5)?", Options: map[string]string{"A": "1-5", "B": "0-5", "C": "0-4", "D": "1-4"}, CorrectAnswer: "C", Explanation: "range(5) gives 0,1,2,3,4."},
			{Question: "Infinite loop?", Options: map[string]string{"A": "for i in range(10)", "B": "while True", "C": "for i in []", "D": "while False"}, CorrectAnswer: "B", Explanation: "'while True' runs forever."},
		},
		"medium": {
			{Question: "range(2, 10, 2) gives?", Options: map[string]string{"A": "2,4,6,8,10", "B": "2,4,6,8", "C": "2,3,4,5,6,7,8,9", "D": "4,6,8"}, CorrectAnswer: "B", Explanation: "Start 2, stop before 10, step 2."},
			{Question: "What is enumerate()?", Options: map[string]string{"A": "Count items", "B": "Index and value", "C": "Sort", "D": "Filter"}, CorrectAnswer: "B", Explanation: "enumerate() gives both index and value."},
			{Question: "Nested loop is?", Options: map[string]string{"A": "Fast loop", "B": "Loop inside loop", "C": "Broken loop", "D": "No loop"}, CorrectAnswer: "B", Explanation: "A loop inside another loop."},
		},
		"hard": {
			{Question: "What is list comprehension?", Options: map[string]string{"A": "List method", "B": "Concise list creation", "C": "List type", "D": "List copy"}, CorrectAnswer: "B", Explanation: "[x for x in items] creates a list concisely."},
			{Question: "for-else in Python?", Options: map[string]string{"A": "Error", "B": "else runs if no break", "C": "Always runs", "D": "Never runs"}, CorrectAnswer: "B", Explanation: "'else' after 'for' runs if the loop completes without break."},
		},
	},
	"Strings": {
		"easy": {
			{Question: "Get string length?", Options: map[string]string{"A": "str.length", "B": "len(str)", "C": "str.size()", "D": "size(str)"}, CorrectAnswer: "B", Explanation: "len() returns length."},
			{Question: "Convert to uppercase?", Options: map[string]string{"A": "str.upper()", "B": "str.UP()", "C": "upper(str)", "D": "str.caps()"}, CorrectAnswer: "A", Explanation: ".upper() converts to uppercase."},
			{Question: "First character of 'Hello'?", Options: map[string]string{"A": "'Hello'[1]", "B": "'Hello'[0]", "C": "'Hello'.first()", "D": "first('Hello')"}, CorrectAnswer: "B", Explanation: "Index 0 is the first character."},
			{Question: "Remove edge spaces?", Options: map[string]string{"A": "trim()", "B": "strip()", "C": "clean()", "D": "remove()"}, CorrectAnswer: "B", Explanation: "strip() removes leading/trailing whitespace."},
		},
		"medium": {
			{Question: "What is an f-string?", Options: map[string]string{"A": "Fast string", "B": "Formatted string", "C": "Float string", "D": "File string"}, CorrectAnswer: "B", Explanation: "f'Hello {name}' embeds variables."},
			{Question: "Replace in string?", Options: map[string]string{"A": "str.swap()", "B": "str.replace()", "C": "str.change()", "D": "replace(str)"}, CorrectAnswer: "B", Explanation: ".replace(old, new) replaces text."},
		},
		"hard": {
			{Question: "What is string interning?", Options: map[string]string{"A": "Compression", "B": "Reusing same string objects", "C": "Encryption", "D": "Parsing"}, CorrectAnswer: "B", Explanation: "Python reuses identical immutable strings."},
		},
	},
	"Functions": {
		"easy": {
			{Question: "Define function keyword?", Options: map[string]string{"A": "function", "B": "def", "C": "func", "D": "define"}, CorrectAnswer: "B", Explanation: "'def' defines a function."},
			{Question: "No return statement returns?", Options: map[string]string{"A": "0", "B": "None", "C": "Error", "D": "Empty"}, CorrectAnswer: "B", Explanation: "Functions return None by default."},
			{Question: "What is a parameter?", Options: map[string]string{"A": "Return value", "B": "Input to function", "C": "Function name", "D": "Output"}, CorrectAnswer: "B", Explanation: "Parameters receive input values."},
			{Question: "What does return do?", Options: map[string]string{"A": "Print", "B": "Send value back", "C": "End program", "D": "Loop"}, CorrectAnswer: "B", Explanation: "return sends a value to the caller."},
		},
		"medium": {
			{Question: "What is *args?", Options: map[string]string{"A": "Required args", "B": "Variable positional args", "C": "Keyword args", "D": "Error"}, CorrectAnswer: "B", Explanation: "*args accepts any number of positional arguments."},
			{Question: "What is lambda?", Options: map[string]string{"A": "Loop", "B": "Anonymous function", "C": "Class", "D": "Module"}, CorrectAnswer: "B", Explanation: "lambda creates small anonymous functions."},
			{Question: "Default parameter value?", Options: map[string]string{"A": "Required", "B": "Optional with preset", "C": "Error", "D": "First only"}, CorrectAnswer: "B", Explanation: "def func(x=5) has a default value."},
		},
		"hard": {
			{Question: "What is a closure?", Options: map[string]string{"A": "End function", "B": "Function with outer scope access", "C": "Error handler", "D": "Loop"}, CorrectAnswer: "B", Explanation: "A closure remembers variables from the enclosing scope."},
			{Question: "What is a decorator?", Options: map[string]string{"A": "Comment", "B": "Function modifier", "C": "Variable", "D": "Class"}, CorrectAnswer: "B", Explanation: "@decorator modifies function behavior."},
		},
	},
	"HTML Basics": {
		"easy": {
			{Question: "HTML stands for?", Options: map[string]string{"A": "Hyper Text Markup Language", "B": "High Tech ML", "C": "Home Tool ML", "D": "Hyper Transfer ML"}, CorrectAnswer: "A", Explanation: "HyperText Markup Language."},
			{Question: "Largest heading tag?", Options: map[string]string{"A": "<h6>", "B": "<h1>", "C": "<head>", "D": "<header>"}, CorrectAnswer: "B", Explanation: "<h1> is the largest heading."},
			{Question: "Image tag?", Options: map[string]string{"A": "<image>", "B": "<img>", "C": "<pic>", "D": "<photo>"}, CorrectAnswer: "B", Explanation: "<img src=''> displays images."},
		},
		"medium": {
			{Question: "<div> vs <span>?", Options: map[string]string{"A": "Same", "B": "div=block, span=inline", "C": "span=block", "D": "No difference"}, CorrectAnswer: "B", Explanation: "div is block-level, span is inline."},
		},
		"hard": {
			{Question: "What is semantic HTML?", Options: map[string]string{"A": "Colored HTML", "B": "Meaningful tags", "C": "Fast HTML", "D": "New HTML"}, CorrectAnswer: "B", Explanation: "Tags that describe content meaning."},
		},
	},
	"Arrays": {
		"easy": {
			{Question: "Array access time complexity?", Options: map[string]string{"A": "O(n)", "B": "O(1)", "C": "O(log n)", "D": "O(n²)"}, CorrectAnswer: "B", Explanation: "Array access by index is O(1)."},
			{Question: "Arrays store elements in?", Options: map[string]string{"A": "Random memory", "B": "Contiguous memory", "C": "Linked nodes", "D": "Tree structure"}, CorrectAnswer: "B", Explanation: "Arrays use contiguous memory."},
		},
		"medium": {
			{Question: "Insert at beginning complexity?", Options: map[string]string{"A": "O(1)", "B": "O(n)", "C": "O(log n)", "D": "O(n²)"}, CorrectAnswer: "B", Explanation: "All elements must shift."},
		},
		"hard": {
			{Question: "What is a dynamic array?", Options: map[string]string{"A": "Fixed size", "B": "Auto-resizing array", "C": "Linked list", "D": "Tree"}, CorrectAnswer: "B", Explanation: "Dynamic arrays resize automatically."},
		},
	},
	"Searching": {
		"easy": {
			{Question: "Linear search complexity?", Options: map[string]string{"A": "O(1)", "B": "O(n)", "C": "O(log n)", "D": "O(n²)"}, CorrectAnswer: "B", Explanation: "Checks each element, O(n)."},
			{Question: "Binary search requires?", Options: map[string]string{"A": "Unsorted data", "B": "Sorted data", "C": "Linked list", "D": "Hash table"}, CorrectAnswer: "B", Explanation: "Binary search needs sorted data."},
		},
		"medium": {
			{Question: "Binary search complexity?", Options: map[string]string{"A": "O(n)", "B": "O(log n)", "C": "O(n²)", "D": "O(1)"}, CorrectAnswer: "B", Explanation: "Binary search is O(log n)."},
		},
		"hard": {
			{Question: "Interpolation search best for?", Options: map[string]string{"A": "Any data", "B": "Uniformly distributed", "C": "Small data", "D": "Unsorted"}, CorrectAnswer: "B", Explanation: "Works best on uniformly distributed data."},
		},
	},
	"Sorting": {
		"easy": {
			{Question: "Bubble sort complexity?", Options: map[string]string{"A": "O(n)", "B": "O(n²)", "C": "O(log n)", "D": "O(n log n)"}, CorrectAnswer: "B", Explanation: "Bubble sort is O(n²)."},
			{Question: "Stable sort means?", Options: map[string]string{"A": "Fast", "B": "Maintains relative order", "C": "No errors", "D": "In-place"}, CorrectAnswer: "B", Explanation: "Equal elements keep their original order."},
		},
		"medium": {
			{Question: "Quick sort average case?", Options: map[string]string{"A": "O(n)", "B": "O(n²)", "C": "O(n log n)", "D": "O(log n)"}, CorrectAnswer: "C", Explanation: "Quick sort averages O(n log n)."},
		},
		"hard": {
			{Question: "Quick sort worst case?", Options: map[string]string{"A": "O(n log n)", "B": "O(n²)", "C": "O(n)", "D": "O(log n)"}, CorrectAnswer: "B", Explanation: "Worst case O(n²) with a bad pivot."},
		},
	},
}
